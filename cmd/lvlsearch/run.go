package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a problem file with one strategy",
		Long: `Loads a graph or grid problem from YAML and solves it with the
strategy given by --strategy (or the config file, default astar-graph).`,
		Example: "  lvlsearch run -f testdata/diamond.yaml -s ucs-graph",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.loadJob(file)
			if err != nil {
				return err
			}
			st, err := a.cfg.SearchStrategy()
			if err != nil {
				return err
			}

			rep := j.Run(cmd.Context(), st, a.cfg.SearchOptions())
			printReport(a.out, rep)
			if rep.Tree != "" {
				fmt.Fprintln(a.out, styles.Title.Render("tree"))
				fmt.Fprint(a.out, rep.Tree)
			}

			return rep.Err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file (YAML)")

	return cmd
}

// printReport writes the headline, path and grid picture of rep.
func printReport(w io.Writer, rep report) {
	style := statusStyle(rep)
	fmt.Fprintf(w, "%s %s\n", styles.Title.Render(rep.Strategy.String()), style.Render(rep.Status))
	if rep.Found {
		fmt.Fprintf(w, "path: %s\n", styles.Path.Render(rep.Path))
		fmt.Fprintf(w, "cost: %g\n", rep.Cost)
	}
	fmt.Fprintf(w, "expansions: %d", rep.Expansions)
	if rep.Rounds > 1 {
		fmt.Fprintf(w, " (total %d over %d rounds)", rep.Total, rep.Rounds)
	}
	fmt.Fprintf(w, "  generated: %d\n", rep.Generated)
	fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("run %s in %s", rep.RunID, rep.Elapsed)))
	if rep.Picture != "" {
		fmt.Fprint(w, rep.Picture)
	}
}
