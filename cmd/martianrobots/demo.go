package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"martianrobots/internal/ctxlog"
	"martianrobots/internal/interpreter"
	"martianrobots/internal/mars"
)

const sampleMission = `5 3
1 1 E
RFRFRFRF
3 2 N
FRRFLLFFRRFLL
0 3 W
LLFFFLFLFL`

func newDemoCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in sample mission.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := interpreter.Parse("sample", sampleMission)
			if err != nil {
				return err
			}
			ctx := interpreter.NewContext(ctxlog.FromContext(cmd.Context()))
			results, err := m.Exec(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== Sample Input ===\n%s\n\n=== Sample Output ===\n%s\n", sampleMission, mars.FormatResults(results))
			if root.cfg.Display.Map {
				fmt.Fprintln(w)
				return interpreter.Display(w, ctx.Bounds, ctx.Scents, results)
			}
			return nil
		},
	}
}
