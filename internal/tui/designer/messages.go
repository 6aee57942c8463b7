package designer

import (
	"github.com/alexisbeaulieu97/timedbutton/internal/export"
)

// PreviewShownMsg reports that the preview timer fired.
type PreviewShownMsg struct{}

// CountdownTickMsg refreshes the remaining-wait placeholder.
type CountdownTickMsg struct {
	Seq int
}

// CopyResultMsg carries the outcome of a clipboard copy.
type CopyResultMsg struct {
	Notification export.Notification
	Err          error
}

// DownloadResultMsg carries the outcome of a download.
type DownloadResultMsg struct {
	Notification export.Notification
	Path         string
	Err          error
}

// ToastExpiredMsg dismisses the toast with the given id.
type ToastExpiredMsg struct {
	ID int
}
