package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoDirectories     = errors.New("no directories configured")
	ErrNoExecutables     = errors.New("no executables found")
	ErrNotExecutable     = errors.New("not an executable")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrUnknownPreference = errors.New("unknown preference")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LaunchError represents a payload that cannot be launched
type LaunchError struct {
	Path   string
	Reason string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s: %s", e.Path, e.Reason)
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrNotExecutable
}
