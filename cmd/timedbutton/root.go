package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

type rootFlags struct {
	verbose bool
	logFile string
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "timedbutton",
		Short:         "Design a timed button and generate its HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to draw the designer on.
			if !isTerminal(cmd.OutOrStdout()) {
				_, err := io.WriteString(cmd.OutOrStdout(), codegen.Generate(config.Defaults()))
				return err
			}
			return runDesign(cmd, flags, designOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newDesignCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newPresetCmd())
	cmd.AddCommand(newFontsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
