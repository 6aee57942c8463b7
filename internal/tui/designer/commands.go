package designer

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/export"
)

// waitForPreviewCmd blocks until the scheduler reports a flip.
func waitForPreviewCmd(shown <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-shown
		return PreviewShownMsg{}
	}
}

// countdownTickCmd refreshes the placeholder once per period.
func countdownTickCmd(seq int) tea.Cmd {
	return tea.Tick(countdownPeriod, func(time.Time) tea.Msg {
		return CountdownTickMsg{Seq: seq}
	})
}

// copyCmd writes the document for b to the clipboard off the UI loop.
func copyCmd(ctx context.Context, svc *export.Service, b config.Button) tea.Cmd {
	return func() tea.Msg {
		n, err := svc.Copy(ctx, b)
		return CopyResultMsg{Notification: n, Err: err}
	}
}

// downloadCmd saves the document for b as a file off the UI loop.
func downloadCmd(ctx context.Context, svc *export.Service, b config.Button) tea.Cmd {
	return func() tea.Msg {
		n, path, err := svc.Download(ctx, b)
		return DownloadResultMsg{Notification: n, Path: path, Err: err}
	}
}

// toastExpireCmd dismisses toast id after d.
func toastExpireCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
