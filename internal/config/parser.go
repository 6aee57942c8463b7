package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/timedbutton/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseButton loads a YAML preset from disk on top of Defaults, validates it,
// and returns the resulting button. Keys absent from the file keep their
// default values.
func ParseButton(path string) (Button, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Button{}, apperrors.NewParseError(path, 0, err)
	}

	return DecodeButton(path, data)
}

// DecodeButton decodes preset bytes; path is only used for error reporting.
func DecodeButton(path string, data []byte) (Button, error) {
	b := Defaults()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Button{}, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateButton(&b); err != nil {
		return Button{}, err
	}

	return b, nil
}

// EncodeButton renders b as a YAML preset.
func EncodeButton(b Button) ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode button preset: %w", err)
	}
	return data, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
