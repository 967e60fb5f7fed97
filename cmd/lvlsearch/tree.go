package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/search"
)

func newTreeCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the generated search tree of one run",
		Long: `Runs one strategy with tracing on and prints every generated node
with its path cost, heuristic and expansion order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.loadJob(file)
			if err != nil {
				return err
			}
			st, err := a.cfg.SearchStrategy()
			if err != nil {
				return err
			}

			opts := append(a.cfg.SearchOptions(), search.WithTrace())
			rep := j.Run(cmd.Context(), st, opts)
			fmt.Fprint(a.out, rep.Tree)
			fmt.Fprintln(a.out, statusStyle(rep).Render(rep.Status))

			return rep.Err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file (YAML)")

	return cmd
}
