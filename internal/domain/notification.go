package domain

// NotificationKind identifies a user-visible condition
type NotificationKind int

const (
	NotifyNoDirectories NotificationKind = iota
	NotifyNoExecutables
)

// NotificationIcon is the freedesktop icon name used for popups
const NotificationIcon = "utilities-terminal"

// Notification is a popup shown to the user
type Notification struct {
	Kind  NotificationKind
	Title string
	Body  string
	Icon  string
}

// NoDirectoriesNotification reports an empty directory configuration
func NoDirectoriesNotification() Notification {
	return Notification{
		Kind:  NotifyNoDirectories,
		Title: "Error",
		Body:  "No directories found in configuration",
		Icon:  NotificationIcon,
	}
}

// NoExecutablesNotification reports a query without matches
func NoExecutablesNotification() Notification {
	return Notification{
		Kind:  NotifyNoExecutables,
		Title: "Error",
		Body:  "No executables found in the configured directories",
		Icon:  NotificationIcon,
	}
}
