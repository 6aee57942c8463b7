package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the built-in font families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFONT STACK")
			for _, f := range config.FontFamilies() {
				fmt.Fprintf(w, "%s\t%s\n", f.Label, f.Value)
			}
			return w.Flush()
		},
	}
}
