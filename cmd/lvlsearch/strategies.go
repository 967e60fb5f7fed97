package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/search"
)

func newStrategiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List strategy names",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			all := append(search.Strategies(), search.DepthLimitedTree, search.DepthLimitedGraph)
			for _, st := range all {
				var notes []string
				if st.Graph() {
					notes = append(notes, "explored set")
				}
				if st.Informed() {
					notes = append(notes, "needs heuristic")
				}
				if st == search.DepthLimitedTree || st == search.DepthLimitedGraph {
					notes = append(notes, "needs --max-depth")
				}
				fmt.Fprintf(a.out, "%-13s %s\n", st, styles.Muted.Render(strings.Join(notes, ", ")))
			}
		},
	}
}
