package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

// Artifact is a named document ready to be saved.
type Artifact struct {
	Name     string
	MIMEType string
	Content  []byte
}

// NewArtifact renders b into the downloadable document.
func NewArtifact(b config.Button) Artifact {
	return Artifact{
		Name:     codegen.Filename,
		MIMEType: codegen.MIMEType,
		Content:  []byte(codegen.Generate(b)),
	}
}

// FileSaver materializes an artifact and returns where it was written.
type FileSaver interface {
	Save(ctx context.Context, a Artifact) (string, error)
}

// DirSaver writes artifacts into a directory, replacing existing files atomically.
type DirSaver struct {
	Dir string
}

// Save writes a into the saver's directory (the working directory when empty).
func (d DirSaver) Save(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(dir, filepath.Base(a.Name)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve download path: %w", err)
	}

	// Write to temporary file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, a.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return path, nil
}
