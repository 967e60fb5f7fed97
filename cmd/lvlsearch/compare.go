package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsearch/search"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		file     string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve a problem file with every strategy and tabulate the results",
		Long: `Runs all twelve strategies concurrently against the same problem.
Tree and iterative-deepening searches can run forever on cyclic or
unreachable problems, so pair compare with --max-expansions or --timeout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.loadJob(file)
			if err != nil {
				return err
			}

			strategies := search.Strategies()
			reports := make([]report, len(strategies))
			g, ctx := errgroup.WithContext(cmd.Context())
			if parallel < 1 {
				parallel = -1 // no limit
			}
			g.SetLimit(parallel)
			for i, st := range strategies {
				g.Go(func() error {
					reports[i] = j.Run(ctx, st, a.cfg.SearchOptions())
					// a canceled parent stops the whole comparison
					return cmd.Context().Err()
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 2, 2, ' ', 0)
			fmt.Fprintln(tw, "strategy\tcost\texpansions\tgenerated\tpath\tstatus")
			for _, rep := range reports {
				cost, path := "-", "-"
				if rep.Found {
					cost, path = fmt.Sprintf("%g", rep.Cost), rep.Path
				}
				status := rep.Status
				if rep.Err != nil {
					status += ": " + rep.Err.Error()
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
					rep.Strategy, cost, rep.Total, rep.Generated, path, statusStyle(rep).Render(status))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file (YAML)")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "strategies run at once (0 or less = all at once)")

	return cmd
}
