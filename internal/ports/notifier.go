package ports

import "execlauncher/internal/domain"

// Notifier shows user-visible popups
type Notifier interface {
	Notify(n domain.Notification)
}
