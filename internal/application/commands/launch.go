package commands

import (
	"context"

	"execlauncher/internal/application"
	"execlauncher/internal/ports"
)

// LaunchCommand starts a selected executable
type LaunchCommand struct {
	launcher ports.Launcher
	scanner  ports.ExecutableScanner
	Path     string

	// Verify classifies Path before launching; used for payloads that did
	// not come from a query result.
	Verify          bool
	FilterLibraries bool
}

// NewLaunchCommand creates a new LaunchCommand
func NewLaunchCommand(launcher ports.Launcher, scanner ports.ExecutableScanner, path string) *LaunchCommand {
	return &LaunchCommand{
		launcher: launcher,
		scanner:  scanner,
		Path:     path,
	}
}

// Validate checks the payload without starting anything
func (c *LaunchCommand) Validate() error {
	if err := application.ValidateAbsolutePath("path", c.Path); err != nil {
		return err
	}
	if c.Verify && !c.scanner.IsLaunchable(c.Path, c.FilterLibraries) {
		return &application.LaunchError{
			Path:   c.Path,
			Reason: "not an executable script or ELF binary",
		}
	}
	return nil
}

// Execute validates and launches the payload without waiting for it
func (c *LaunchCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.launcher.Launch(c.Path)
}
