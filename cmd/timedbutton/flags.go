package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

func validatePresetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("preset file path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve preset path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("preset file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("preset path %s is a directory", abs)
	}

	return nil
}

// loadStartingButton returns the preset at path, or the defaults when path is empty.
func loadStartingButton(operation, path string) (config.Button, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	if err := validatePresetPath(path); err != nil {
		return config.Button{}, newCommandError(operation, "locating preset", err, "Pass an existing YAML file with --config.")
	}
	b, err := config.ParseButton(path)
	if err != nil {
		return config.Button{}, newCommandError(operation, "loading preset", err, "Fix the preset file and try again.")
	}
	return b, nil
}
