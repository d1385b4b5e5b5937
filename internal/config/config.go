package config

import (
	"os"

	"execlauncher/internal/domain"
)

// Environment variables
const (
	EnvDirectories     = "EXECLAUNCHER_DIRS"
	EnvFilterLibraries = "EXECLAUNCHER_FILTER_LIBS"
	EnvDatabase        = "EXECLAUNCHER_DB"
	EnvDebug           = "EXECLAUNCHER_DEBUG"
)

// Defaults used when nothing else is configured
const (
	DefaultDirectories     = "~/.local/bin,~/bin"
	DefaultFilterLibraries = "false"
)

// Overrides holds values set explicitly on the command line.
// Empty fields are not applied.
type Overrides struct {
	Directories     string
	FilterLibraries string
}

// Resolve merges preference sources. Highest precedence wins:
// overrides, then environment, then stored, then defaults.
func Resolve(stored map[string]string, overrides Overrides) domain.Preferences {
	prefs := domain.Preferences{
		Directories:     DefaultDirectories,
		FilterLibraries: DefaultFilterLibraries,
	}

	if v, ok := stored[domain.PrefDirectories]; ok {
		prefs.Directories = v
	}
	if v, ok := stored[domain.PrefFilterLibraries]; ok {
		prefs.FilterLibraries = v
	}

	if v, ok := os.LookupEnv(EnvDirectories); ok {
		prefs.Directories = v
	}
	if v, ok := os.LookupEnv(EnvFilterLibraries); ok {
		prefs.FilterLibraries = v
	}

	if overrides.Directories != "" {
		prefs.Directories = overrides.Directories
	}
	if overrides.FilterLibraries != "" {
		prefs.FilterLibraries = overrides.FilterLibraries
	}

	return prefs
}

// DatabasePath returns the preference database path from EXECLAUNCHER_DB,
// falling back to fallback.
func DatabasePath(fallback string) string {
	if env := os.Getenv(EnvDatabase); env != "" {
		return env
	}
	return fallback
}

// Debug reports whether debug logging was requested via the environment
func Debug() bool {
	return domain.ParseBool(os.Getenv(EnvDebug))
}
