// Package batch simulates independent missions concurrently. Each mission
// owns its own scent registry, so missions never observe each other.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"martianrobots/internal/ctxlog"
	"martianrobots/internal/interpreter"
	"martianrobots/internal/mars"
)

// Report is the outcome of one mission.
type Report struct {
	Mission *interpreter.Mission
	Results []mars.Result
	Bounds  mars.Bounds
	Scents  []mars.Position
	RunID   string
}

// Run executes missions with at most workers in flight and returns reports
// in the order of missions. The first failure cancels missions not yet started.
func Run(ctx context.Context, missions []*interpreter.Mission, workers int) ([]Report, error) {
	if workers < 1 {
		workers = 1
	}
	log := ctxlog.FromContext(ctx)
	reports := make([]Report, len(missions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range missions {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run := interpreter.NewContext(log)
			results, err := m.Exec(run)
			if err != nil {
				return fmt.Errorf("mission %s: %w", m.Name(), err)
			}
			reports[i] = Report{
				Mission: m,
				Results: results,
				Bounds:  run.Bounds,
				Scents:  run.Scents.Positions(),
				RunID:   run.RunID,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
