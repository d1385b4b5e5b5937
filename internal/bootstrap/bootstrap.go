// Package bootstrap wires adapters into a configured pipeline for the
// command-line entry points.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"execlauncher/internal/adapters/filesystem"
	"execlauncher/internal/adapters/launcher"
	"execlauncher/internal/adapters/notify"
	"execlauncher/internal/adapters/sqlite"
	"execlauncher/internal/application/pipeline"
	"execlauncher/internal/config"
	"execlauncher/internal/ports"
)

// Options control how the runtime is assembled
type Options struct {
	Prefix    string // Log prefix
	LogOutput io.Writer
	Debug     bool
	DBPath    string
	Overrides config.Overrides

	// Notifier builds the notification sink; nil selects a log notifier
	Notifier func(logger *log.Logger) ports.Notifier
}

// Runtime is a configured pipeline plus the resources it holds
type Runtime struct {
	Logger  *log.Logger
	Store   *sqlite.Store
	Service *pipeline.Service
}

// NewLogger creates the structured logger used by the binaries
func NewLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
	})
	if debug || config.Debug() {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Open loads preferences and configures a pipeline
func Open(ctx context.Context, opts Options) (*Runtime, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	logger := NewLogger(opts.LogOutput, opts.Prefix, opts.Debug)

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = config.DatabasePath(sqlite.DefaultPath())
	}

	store := sqlite.NewStore()
	if err := store.Open(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	stored, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}

	var notifier ports.Notifier
	if opts.Notifier != nil {
		notifier = opts.Notifier(logger)
	} else {
		notifier = notify.NewLogger(logger)
	}

	svc := pipeline.NewService(
		filesystem.NewScanner(logger),
		launcher.NewLauncher(logger),
		notifier,
		logger,
	)
	svc.Configure(ctx, config.Resolve(stored, opts.Overrides))

	return &Runtime{
		Logger:  logger,
		Store:   store,
		Service: svc,
	}, nil
}

// DesktopNotifier selects desktop popups with a log fallback
func DesktopNotifier(logger *log.Logger) ports.Notifier {
	return notify.NewDesktop(logger)
}

// Close releases the preference store
func (r *Runtime) Close() error {
	return r.Store.Close()
}
