package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

func newPresetCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Print a YAML preset to start from",
		Long: `Print a YAML preset holding every button field.

With --config the given preset is normalized (defaults filled in) and printed.`,
		Example: `  timedbutton preset > button.yaml
  timedbutton design -c button.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			button, err := loadStartingButton("print preset", from)
			if err != nil {
				return err
			}

			data, err := config.EncodeButton(button)
			if err != nil {
				return newCommandError("print preset", "encoding preset", err, "Report this issue.")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&from, "config", "c", "", "Preset to normalize")

	return cmd
}
