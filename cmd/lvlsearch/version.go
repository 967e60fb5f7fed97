package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lvlsearch",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "lvlsearch version %s\n", version)
		},
	}
}
