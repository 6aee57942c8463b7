package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/timedbutton/internal/export"
	"github.com/alexisbeaulieu97/timedbutton/internal/tui/designer"
)

type designOptions struct {
	presetPath  string
	downloadDir string
}

func newDesignCmd(flags *rootFlags) *cobra.Command {
	opts := designOptions{}

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Launch the interactive button designer",
		Long:  `Launch the interactive designer with a live preview, the generated HTML and Copy/Download actions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesign(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.presetPath, "config", "c", "", "Start from a YAML preset")
	cmd.Flags().StringVar(&opts.downloadDir, "download-dir", "", "Directory for downloaded files (default: working directory)")

	return cmd
}

func runDesign(cmd *cobra.Command, flags *rootFlags, opts designOptions) error {
	// The terminal belongs to the designer; logs go to --log-file or nowhere.
	log, closeLog, err := newCommandLogger(flags, "designer", io.Discard)
	if err != nil {
		return newCommandError("launch designer", "opening log file", err, "Check --log-file permissions.")
	}
	defer closeLog()

	button, err := loadStartingButton("launch designer", opts.presetPath)
	if err != nil {
		log.Error(err, "preset load failed")
		return err
	}

	exporter := export.NewService(
		export.SystemClipboard{},
		export.DirSaver{Dir: opts.downloadDir},
		export.LogNotifier{Logger: log},
		log,
	)

	m := designer.NewModel(designer.Options{
		Button:   button,
		Exporter: exporter,
		Logger:   log,
		Context:  cmd.Context(),
	})
	defer m.Stop()

	log.Info("launching designer")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "designer execution failed")
		return newCommandError("launch designer", "running the terminal UI", err, "Run the command in an interactive terminal.")
	}
	log.Info("designer closed")

	return nil
}
