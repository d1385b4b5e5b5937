// Package pipeline owns the active configuration and runs queries, launches
// and preference updates on behalf of the presentation layers.
package pipeline

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"execlauncher/internal/application"
	"execlauncher/internal/application/commands"
	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// state pairs the raw preferences with the settings derived from them
type state struct {
	prefs    domain.Preferences
	settings domain.Settings
}

// Service is the query pipeline. Configuration is swapped atomically, so a
// running query keeps the snapshot it started with.
type Service struct {
	scanner  ports.ExecutableScanner
	launcher ports.Launcher
	notifier ports.Notifier
	logger   *log.Logger

	state    atomic.Pointer[state]
	handlers map[EventKind]handlerFunc
}

// NewService creates a pipeline with an empty configuration
func NewService(scanner ports.ExecutableScanner, launcher ports.Launcher, notifier ports.Notifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{
		scanner:  scanner,
		launcher: launcher,
		notifier: notifier,
		logger:   logger,
	}
	s.state.Store(&state{})
	s.handlers = s.defaultHandlers()
	return s
}

// Settings returns the active configuration
func (s *Service) Settings() domain.Settings {
	return s.state.Load().settings
}

// Preferences returns the raw preferences the active configuration came from
func (s *Service) Preferences() domain.Preferences {
	return s.state.Load().prefs
}

// Configure replaces the configuration with one built from prefs.
// An empty root set is reported through the notifier, never as an error.
func (s *Service) Configure(ctx context.Context, prefs domain.Preferences) domain.Settings {
	settings, err := commands.NewConfigureCommand(s.scanner, prefs).Execute(ctx)
	if errors.Is(err, application.ErrNoDirectories) {
		s.notifier.Notify(domain.NoDirectoriesNotification())
	}

	s.state.Store(&state{prefs: prefs, settings: settings})
	s.logger.Debug("configured", "roots", settings.Roots, "filter_libraries", settings.FilterLibraries)
	return settings
}

// UpdatePreference changes a single preference and rebuilds the configuration
func (s *Service) UpdatePreference(ctx context.Context, key string, value any) (domain.Settings, error) {
	if err := application.ValidatePreferenceKey(key); err != nil {
		return s.Settings(), err
	}
	prefs, err := s.Preferences().With(key, value)
	if err != nil {
		return s.Settings(), err
	}
	return s.Configure(ctx, prefs), nil
}

// Query returns at most MaxResults ranked items for raw. When nothing
// matches, the no-executables notification fires once and the result is empty.
func (s *Service) Query(ctx context.Context, raw string) []domain.ResultItem {
	settings := s.Settings()

	items, err := commands.NewFindCommand(s.scanner, settings, raw).Execute(ctx)
	switch {
	case errors.Is(err, application.ErrNoExecutables):
		s.notifier.Notify(domain.NoExecutablesNotification())
		return nil
	case err != nil:
		s.logger.Debug("query aborted", "query", raw, "err", err)
		return nil
	}

	s.logger.Debug("query", "query", raw, "results", len(items))
	return items
}

// Launch starts payload without waiting. Failures are logged only.
func (s *Service) Launch(ctx context.Context, payload string) {
	if err := commands.NewLaunchCommand(s.launcher, s.scanner, payload).Execute(ctx); err != nil {
		s.logger.Debug("launch failed", "path", payload, "err", err)
	}
}

// LaunchChecked verifies that payload is a launchable executable before
// starting it. Validation failures are returned; start failures are only
// logged, as with Launch.
func (s *Service) LaunchChecked(ctx context.Context, payload string) error {
	cmd := commands.NewLaunchCommand(s.launcher, s.scanner, payload)
	cmd.Verify = true
	cmd.FilterLibraries = s.Settings().FilterLibraries

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := s.launcher.Launch(payload); err != nil {
		s.logger.Debug("launch failed", "path", payload, "err", err)
	}
	return nil
}
