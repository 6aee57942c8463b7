// Package export implements the Copy and Download actions for the generated
// document together with the collaborators they report through.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/logger"
	apperrors "github.com/alexisbeaulieu97/timedbutton/pkg/errors"
)

var errClipboardUnsupported = errors.New("clipboard is not supported on this system")

// Service performs export actions. Outcomes are reported to the Notifier and
// returned; export failures never alter the button configuration.
type Service struct {
	clipboard Clipboard
	saver     FileSaver
	notifier  Notifier
	log       *logger.Logger
}

// NewService wires the export collaborators. A nil notifier drops
// notifications and a nil logger discards log output.
func NewService(cb Clipboard, saver FileSaver, notifier Notifier, log *logger.Logger) *Service {
	if notifier == nil {
		notifier = NotifierFunc(nil)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{clipboard: cb, saver: saver, notifier: notifier, log: log}
}

// Copy places the generated document for b on the clipboard.
func (s *Service) Copy(ctx context.Context, b config.Button) (Notification, error) {
	return s.CopyText(ctx, codegen.Generate(b))
}

// CopyText places an already generated document on the clipboard.
func (s *Service) CopyText(ctx context.Context, doc string) (Notification, error) {
	var err error
	if s.clipboard == nil {
		err = errClipboardUnsupported
	} else {
		err = s.clipboard.WriteText(ctx, doc)
	}

	if err != nil {
		err = apperrors.NewExportError("copy", "clipboard", err)
		s.log.Error(err, "copy to clipboard failed")
		n := Notification{
			Title:       "Copy failed",
			Description: "Please select and copy the code manually.",
			Severity:    SeverityWarning,
		}
		s.notifier.Notify(n)
		return n, err
	}

	s.log.WithFields(map[string]any{"bytes": len(doc)}).Info("copied document to clipboard")
	n := Notification{
		Title:       "Code copied!",
		Description: "The HTML code has been copied to your clipboard.",
		Severity:    SeveritySuccess,
	}
	s.notifier.Notify(n)
	return n, nil
}

// Download saves the generated document for b as timed-button.html.
func (s *Service) Download(ctx context.Context, b config.Button) (Notification, string, error) {
	return s.DownloadArtifact(ctx, NewArtifact(b))
}

// DownloadArtifact saves an already generated artifact.
func (s *Service) DownloadArtifact(ctx context.Context, a Artifact) (Notification, string, error) {
	var (
		path string
		err  error
	)
	if s.saver == nil {
		err = errors.New("no file saver configured")
	} else {
		path, err = s.saver.Save(ctx, a)
	}

	if err != nil {
		err = apperrors.NewExportError("download", a.Name, err)
		s.log.Error(err, "download failed")
		n := Notification{
			Title:       "Download failed",
			Description: err.Error(),
			Severity:    SeverityError,
		}
		s.notifier.Notify(n)
		return n, "", err
	}

	s.log.WithFields(map[string]any{"path": path, "mime_type": a.MIMEType}).Info("saved document")
	n := Notification{
		Title:       "Download started!",
		Description: fmt.Sprintf("The HTML file has been saved to %s.", path),
		Severity:    SeveritySuccess,
	}
	s.notifier.Notify(n)
	return n, path, nil
}
