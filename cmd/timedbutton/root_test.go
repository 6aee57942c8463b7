package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

func TestRootPrintsDocumentWithoutTerminal(t *testing.T) {
	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Equal(t, codegen.Generate(config.Defaults()), stdout)
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := executeCommand(t, "unexpected")
	require.Error(t, err)
}

func TestFontsListsFamilies(t *testing.T) {
	stdout, _, err := executeCommand(t, "fonts")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(config.FontFamilies())+1)
	assert.Contains(t, lines[0], "FONT STACK")
	assert.Contains(t, stdout, "Arial, sans-serif")
}

func TestLoadStartingButtonDefaults(t *testing.T) {
	b, err := loadStartingButton("test", "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), b)
}

func TestValidatePresetPathRejectsDirectory(t *testing.T) {
	err := validatePresetPath(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestPresetRoundTripsThroughGenerate(t *testing.T) {
	stdout, _, err := executeCommand(t, "preset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "delay_seconds: 3")
	assert.Contains(t, stdout, "alignment: center")

	preset := writePreset(t, stdout)
	doc, _, err := executeCommand(t, "generate", "-c", preset)
	require.NoError(t, err)
	assert.Equal(t, codegen.Generate(config.Defaults()), doc)
}

func TestPresetNormalizesPartialFile(t *testing.T) {
	preset := writePreset(t, "button_text: Partial\n")

	stdout, _, err := executeCommand(t, "preset", "-c", preset)
	require.NoError(t, err)
	assert.Contains(t, stdout, "button_text: Partial")
	assert.Contains(t, stdout, "width: 200px")
}
