package interpreter

import (
	"log/slog"

	"github.com/rs/xid"

	"martianrobots/internal/mars"
)

// Context stores the state shared by every robot of a run. A Context may be
// reused for several missions one after another; each Exec starts a new run.
type Context struct {
	Scents *mars.ScentRegistry
	Bounds mars.Bounds
	RunID  string
	Log    *slog.Logger

	base *slog.Logger
}

func NewContext(log *slog.Logger) *Context {
	if log == nil {
		log = slog.Default()
	}
	return &Context{Scents: mars.NewScentRegistry(), Log: log, base: log}
}

func (c *Context) begin(m *Mission, b mars.Bounds) {
	c.Scents.Reset()
	c.Bounds = b
	c.RunID = xid.New().String()
	c.Log = c.base.With("run", c.RunID, "mission", m.Name())
}
