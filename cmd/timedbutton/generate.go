package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/export"
)

type generateOptions struct {
	presetPath string
	outputPath string
	values     map[config.Field]*string
	delay      int
}

// fieldFlags maps string flags onto the fields they override.
var fieldFlags = []struct {
	name  string
	field config.Field
}{
	{"width", config.FieldWidth},
	{"height", config.FieldHeight},
	{"background-color", config.FieldBackgroundColor},
	{"text-color", config.FieldTextColor},
	{"border-width", config.FieldBorderWidth},
	{"border-color", config.FieldBorderColor},
	{"font-size", config.FieldFontSize},
	{"font-weight", config.FieldFontWeight},
	{"font-family", config.FieldFontFamily},
	{"text", config.FieldButtonText},
	{"link", config.FieldLinkURL},
	{"align", config.FieldAlignment},
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{values: make(map[config.Field]*string, len(fieldFlags))}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the timed button HTML without the designer",
		Long: `Generate the self-contained HTML document for a timed button.

Values start from the defaults, then the --config preset, then any flags.`,
		Example: `  timedbutton generate --text "Buy now" --delay 5 -o button.html
  timedbutton generate -c preset.yaml --align left`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, opts)
		},
	}

	defaults := config.Defaults()
	for _, ff := range fieldFlags {
		value := new(string)
		opts.values[ff.field] = value
		cmd.Flags().StringVar(value, ff.name, defaults.Value(ff.field), ff.field.Label())
	}
	cmd.Flags().IntVar(&opts.delay, "delay", defaults.DelaySeconds, config.FieldDelaySeconds.Label())
	cmd.Flags().StringVarP(&opts.presetPath, "config", "c", "", "YAML preset to start from")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the document to this file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions) error {
	log, closeLog, err := newCommandLogger(flags, "generate", cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("generate", "opening log file", err, "Check --log-file permissions.")
	}
	defer closeLog()

	button, err := loadStartingButton("generate", opts.presetPath)
	if err != nil {
		return err
	}

	for _, ff := range fieldFlags {
		if cmd.Flags().Changed(ff.name) {
			button = button.With(ff.field, *opts.values[ff.field])
		}
	}
	if cmd.Flags().Changed("delay") {
		button = button.With(config.FieldDelaySeconds, strconv.Itoa(opts.delay))
	}

	if err := config.ValidateButton(&button); err != nil {
		return newCommandError("generate", "validating button", err, "Alignment must be left, center or right and no field may be empty.")
	}

	if opts.outputPath == "" {
		log.Debug("writing document to stdout")
		_, err := io.WriteString(cmd.OutOrStdout(), codegen.Generate(button))
		return err
	}

	artifact := export.NewArtifact(button)
	artifact.Name = filepath.Base(opts.outputPath)
	saver := export.DirSaver{Dir: filepath.Dir(opts.outputPath)}
	path, err := saver.Save(cmd.Context(), artifact)
	if err != nil {
		return newCommandError("generate", "writing output file", err, "Check the output directory permissions.")
	}

	log.WithFields(map[string]any{"path": path, "bytes": len(artifact.Content)}).Debug("document written")
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
