package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/timedbutton/internal/logger"
)

// newCommandLogger builds the logger for a command. Entries go to --log-file
// when set and to fallback otherwise; the returned closer releases the file.
func newCommandLogger(flags *rootFlags, component string, fallback io.Writer) (*logger.Logger, func(), error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	writer := fallback
	closer := func() {}
	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = func() { _ = file.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.logFile == "",
		Writer:        writer,
		Component:     component,
	})
	if err != nil {
		closer()
		return nil, func() {}, err
	}
	return log, closer, nil
}
