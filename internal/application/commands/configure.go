package commands

import (
	"context"
	"os"

	"execlauncher/internal/application"
	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// ConfigureCommand rebuilds Settings from raw preferences
type ConfigureCommand struct {
	scanner     ports.ExecutableScanner
	Preferences domain.Preferences
	Home        string
}

// NewConfigureCommand creates a new ConfigureCommand for the current user
func NewConfigureCommand(scanner ports.ExecutableScanner, prefs domain.Preferences) *ConfigureCommand {
	home, _ := os.UserHomeDir()
	return &ConfigureCommand{
		scanner:     scanner,
		Preferences: prefs,
		Home:        home,
	}
}

// Execute resolves the root directories, dropping those that do not exist.
// The settings are always returned; ErrNoDirectories reports an empty root set.
func (c *ConfigureCommand) Execute(ctx context.Context) (domain.Settings, error) {
	settings := domain.ResolveSettings(c.Preferences, c.Home, c.scanner.IsDir)
	if len(settings.Roots) == 0 {
		return settings, application.ErrNoDirectories
	}
	return settings, nil
}
