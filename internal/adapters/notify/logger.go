package notify

import (
	"github.com/charmbracelet/log"

	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// Logger implements ports.Notifier by writing warnings to a logger.
// Used by non-interactive front ends.
type Logger struct {
	logger *log.Logger
}

var _ ports.Notifier = (*Logger)(nil)

// NewLogger creates a notifier that logs
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{logger: logger}
}

// Notify logs n at warn level
func (l *Logger) Notify(n domain.Notification) {
	l.logger.Warn(n.Body)
}
