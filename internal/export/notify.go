package export

import (
	"github.com/alexisbeaulieu97/timedbutton/internal/logger"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient, user-facing outcome report.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier delivers notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	if f != nil {
		f(n)
	}
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger *logger.Logger
}

// Notify logs n at a level matching its severity.
func (l LogNotifier) Notify(n Notification) {
	log := l.Logger.WithFields(map[string]any{
		"title":       n.Title,
		"description": n.Description,
		"severity":    string(n.Severity),
	})
	switch n.Severity {
	case SeverityWarning:
		log.Warn("notification")
	case SeverityError:
		log.Error(nil, "notification")
	default:
		log.Info("notification")
	}
}
