package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"martianrobots/internal/batch"
	"martianrobots/internal/interpreter"
	"martianrobots/internal/mars"
)

type runOptions struct {
	showMap bool
	audit   bool
	workers int
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [mission files...]",
		Short: "Run mission files, or a mission typed on stdin.",
		Long: `Run one or more mission files. Each file is an independent run with ` +
			`its own scents; files are simulated concurrently and reported in ` +
			`argument order. "-" reads a mission from stdin up to EOF. Without ` +
			`files the mission is typed on stdin and ends at EOF or two blank lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("map") {
				opts.showMap = root.cfg.Display.Map
			}
			if !cmd.Flags().Changed("audit") {
				opts.audit = root.cfg.Display.Audit
			}
			if !cmd.Flags().Changed("workers") {
				opts.workers = root.cfg.Batch.Workers
			}
			return opts.run(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&opts.showMap, "map", false, "draw the grid after each run")
	cmd.Flags().BoolVar(&opts.audit, "audit", false, "print the outcome of every instruction")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "missions simulated at once")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command, args []string) error {
	var missions []*interpreter.Mission
	if len(args) == 0 {
		text, err := interpreter.ReadInteractive(cmd.InOrStdin())
		if err != nil {
			return err
		}
		m, err := interpreter.Parse("stdin", text)
		if err != nil {
			return err
		}
		missions = append(missions, m)
	}
	for _, path := range args {
		if path == "-" {
			m, err := interpreter.ReadMission("stdin", cmd.InOrStdin())
			if err != nil {
				return err
			}
			missions = append(missions, m)
			continue
		}
		m, err := interpreter.LoadMission(path)
		if err != nil {
			return err
		}
		missions = append(missions, m)
	}

	reports, err := batch.Run(cmd.Context(), missions, o.workers)
	if err != nil {
		return err
	}
	return o.print(cmd.OutOrStdout(), reports)
}

func (o *runOptions) print(w io.Writer, reports []batch.Report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if len(reports) > 1 {
			fmt.Fprintf(w, "# %s\n", r.Mission.Name())
		}
		if len(r.Results) > 0 {
			fmt.Fprintln(w, mars.FormatResults(r.Results))
		}
		if o.audit {
			writeAudit(w, r.Results)
		}
		if o.showMap {
			scents := mars.NewScentRegistry()
			for _, p := range r.Scents {
				scents.Record(p)
			}
			if err := interpreter.Display(w, r.Bounds, scents, r.Results); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAudit(w io.Writer, results []mars.Result) {
	for i, res := range results {
		steps := res.Audit()
		parts := make([]string, len(steps))
		for j, s := range steps {
			parts[j] = fmt.Sprintf("%s:%s", s.Instruction, s.Outcome)
		}
		fmt.Fprintf(w, "robot %d: %s\n", i, strings.Join(parts, " "))
	}
}
