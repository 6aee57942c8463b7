package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/logger"
	apperrors "github.com/alexisbeaulieu97/timedbutton/pkg/errors"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type recordingNotifier struct {
	got []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.got = append(r.got, n)
}

func TestCopyWritesGeneratedDocument(t *testing.T) {
	t.Parallel()

	cb := &fakeClipboard{}
	notes := &recordingNotifier{}
	svc := NewService(cb, nil, notes, nil)

	b := config.Defaults().With(config.FieldButtonText, "Copy me")
	n, err := svc.Copy(context.Background(), b)
	require.NoError(t, err)

	require.Equal(t, codegen.Generate(b), cb.text)
	require.Equal(t, SeveritySuccess, n.Severity)
	require.Equal(t, "Code copied!", n.Title)
	require.Equal(t, []Notification{n}, notes.got)
}

func TestCopyFailureWarns(t *testing.T) {
	t.Parallel()

	cb := &fakeClipboard{err: errors.New("denied")}
	notes := &recordingNotifier{}
	svc := NewService(cb, nil, notes, nil)

	n, err := svc.Copy(context.Background(), config.Defaults())

	var exportErr *apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "copy", exportErr.Action)
	require.Equal(t, SeverityWarning, n.Severity)
	require.Equal(t, "Copy failed", n.Title)
	require.Equal(t, "Please select and copy the code manually.", n.Description)
	require.Len(t, notes.got, 1)
}

func TestCopyWithoutClipboard(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil, nil)
	n, err := svc.CopyText(context.Background(), "doc")
	require.ErrorIs(t, err, errClipboardUnsupported)
	require.Equal(t, SeverityWarning, n.Severity)
}

func TestDownloadSavesArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notes := &recordingNotifier{}
	svc := NewService(nil, DirSaver{Dir: dir}, notes, nil)

	b := config.Defaults().With(config.FieldDelaySeconds, "9")
	n, path, err := svc.Download(context.Background(), b)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "timed-button.html"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, codegen.Generate(b), string(content))
	require.Equal(t, "Download started!", n.Title)
	require.Contains(t, n.Description, path)
	require.Len(t, notes.got, 1)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestDownloadOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "timed-button.html"), []byte("old"), 0o644))

	svc := NewService(nil, DirSaver{Dir: dir}, nil, nil)
	_, path, err := svc.Download(context.Background(), config.Defaults())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "<!DOCTYPE html>"))
}

func TestDownloadFailureReportsError(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	notes := &recordingNotifier{}
	svc := NewService(nil, DirSaver{Dir: filepath.Join(blocker, "sub")}, notes, nil)
	n, path, err := svc.Download(context.Background(), config.Defaults())

	var exportErr *apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "download", exportErr.Action)
	require.Empty(t, path)
	require.Equal(t, SeverityError, n.Severity)
	require.Len(t, notes.got, 1)
}

func TestDownloadRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(nil, DirSaver{Dir: t.TempDir()}, nil, nil)
	_, _, err := svc.Download(ctx, config.Defaults())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewArtifact(t *testing.T) {
	t.Parallel()

	a := NewArtifact(config.Defaults())
	assert.Equal(t, "timed-button.html", a.Name)
	assert.Equal(t, "text/html", a.MIMEType)
	assert.Equal(t, codegen.Generate(config.Defaults()), string(a.Content))
}

func TestLogNotifierWritesSeverity(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	LogNotifier{Logger: log}.Notify(Notification{Title: "Copy failed", Severity: SeverityWarning})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "Copy failed", entry["title"])
	require.Equal(t, "warning", entry["severity"])
}

func TestNotifierFuncNilIsSafe(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		NotifierFunc(nil).Notify(Notification{Title: "ignored"})
	})
}
