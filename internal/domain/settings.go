package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Preference keys understood by the preference store
const (
	PrefDirectories     = "directories"
	PrefFilterLibraries = "filter_libraries"
)

// Preferences is the raw configuration input delivered by a preference store
type Preferences struct {
	Directories     string // Comma-separated, may use ~
	FilterLibraries any    // bool or a boolean-like string
}

// Settings is the resolved configuration used by a query.
// A Settings value is never mutated after construction.
type Settings struct {
	Roots           []string
	FilterLibraries bool
}

// With returns a copy of p with one key replaced
func (p Preferences) With(key string, value any) (Preferences, error) {
	switch key {
	case PrefDirectories:
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		p.Directories = s
	case PrefFilterLibraries:
		p.FilterLibraries = value
	default:
		return p, fmt.Errorf("unknown preference %q", key)
	}
	return p, nil
}

// ParseBool interprets a boolean-like preference value.
// Accepts real booleans and the strings true/1/yes/on (any case); everything
// else is false.
func ParseBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		}
	}
	return false
}

// SplitDirectories splits a comma-separated directory list, dropping blanks
func SplitDirectories(raw string) []string {
	var dirs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			dirs = append(dirs, part)
		}
	}
	return dirs
}

// ExpandHome replaces a leading ~ with home
func ExpandHome(path, home string) string {
	if !strings.HasPrefix(path, "~") || home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ResolveSettings builds Settings from raw preferences. Directories that
// isDir rejects are dropped.
func ResolveSettings(prefs Preferences, home string, isDir func(string) bool) Settings {
	settings := Settings{FilterLibraries: ParseBool(prefs.FilterLibraries)}
	for _, dir := range SplitDirectories(prefs.Directories) {
		dir = ExpandHome(dir, home)
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		if isDir(dir) {
			settings.Roots = append(settings.Roots, dir)
		}
	}
	return settings
}
