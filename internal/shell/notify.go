package shell

import (
	"fmt"
	"time"
)

const (
	// notificationTTL is how long a notification stays visible.
	notificationTTL = 3 * time.Second
	// maxNotifications bounds the visible notification stack.
	maxNotifications = 5
	// maxLogEntries bounds the log ring.
	maxLogEntries = 200
)

// Notification is a transient status message.
type Notification struct {
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
}

// LogEntry is one line of the persistent session log.
type LogEntry struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Notify appends a notification and mirrors it into the log. Expired
// entries are pruned; the stack keeps only the newest few.
func (sh *Shell) Notify(message, notifType string) {
	sh.pruneNotifications()
	sh.notifications = append(sh.notifications, Notification{
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
	})
	if len(sh.notifications) > maxNotifications {
		sh.notifications = sh.notifications[len(sh.notifications)-maxNotifications:]
	}

	switch notifType {
	case "error":
		sh.LogError("%s", message)
	case "warning":
		sh.LogWarn("%s", message)
	default:
		sh.LogInfo("%s", message)
	}
}

// Notifications returns the currently visible notifications.
func (sh *Shell) Notifications() []Notification {
	sh.pruneNotifications()
	return sh.notifications
}

func (sh *Shell) pruneNotifications() {
	now := time.Now()
	active := sh.notifications[:0]
	for _, n := range sh.notifications {
		if now.Sub(n.StartTime) < notificationTTL {
			active = append(active, n)
		}
	}
	sh.notifications = active
}

// Log appends a formatted entry to the session log ring.
func (sh *Shell) Log(level, format string, args ...any) {
	sh.logs = append(sh.logs, LogEntry{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(sh.logs) > maxLogEntries {
		sh.logs = sh.logs[len(sh.logs)-maxLogEntries:]
	}
}

// LogInfo logs at INFO level.
func (sh *Shell) LogInfo(format string, args ...any) {
	sh.Log("INFO", format, args...)
}

// LogWarn logs at WARN level.
func (sh *Shell) LogWarn(format string, args ...any) {
	sh.Log("WARN", format, args...)
}

// LogError logs at ERROR level.
func (sh *Shell) LogError(format string, args ...any) {
	sh.Log("ERROR", format, args...)
}

// Logs returns the session log, oldest first.
func (sh *Shell) Logs() []LogEntry {
	return sh.logs
}
