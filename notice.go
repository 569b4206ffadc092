package andie

import (
	"log/slog"
)

// Notice is a recoverable condition reported to the user, such as undo
// with an empty history. Notices never abort an action.
type Notice struct {
	// Err is the sentinel describing the condition, for errors.Is.
	Err error
	// Message is a short human-readable description.
	Message string
}

func (n Notice) String() string {
	return n.Message
}

// Notifier receives notices from an Editor.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// logNotifier writes notices to the editor's logger at Info level.
type logNotifier struct {
	logger func() *slog.Logger
}

func (l logNotifier) Notify(n Notice) {
	l.logger().Info(n.Message, "reason", n.Err)
}
