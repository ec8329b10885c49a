package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"martianrobots/internal/mars"
)

// LoadMission reads and parses a mission file.
func LoadMission(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

func ReadMission(name string, r io.Reader) (*Mission, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Parse(name, string(data))
}

// instruction lines may be far longer than bufio's default token limit
const maxLineSize = 64 << 20

// ReadInteractive collects console input until EOF or two consecutive
// blank lines. Blank lines themselves are dropped.
func ReadInteractive(r io.Reader) (string, error) {
	var lines []string
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			blank++
			if blank >= 2 {
				break
			}
			continue
		}
		blank = 0
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Exec runs every robot of the mission in input order against a freshly
// reset scent registry.
func (m *Mission) Exec(ctx *Context) ([]mars.Result, error) {
	bounds, err := mars.NewBounds(m.Grid.MaxX, m.Grid.MaxY)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Grid.Pos, err)
	}
	ctx.begin(m, bounds)
	engine := mars.NewEngine(bounds, ctx.Scents)

	results := make([]mars.Result, 0, len(m.Robots))
	lost := 0
	for i, rec := range m.Robots {
		res, err := rec.Exec(ctx, engine)
		if err != nil {
			return nil, err
		}
		if res.Lost {
			lost++
		}
		ctx.Log.Debug("robot finished", "robot", i, "result", res.String(), "steps", len(res.Steps))
		results = append(results, res)
	}
	ctx.Log.Info("run finished", "robots", len(results), "lost", lost, "scents", ctx.Scents.Len())
	return results, nil
}
