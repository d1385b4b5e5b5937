package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"execlauncher/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts field names to space-separated words
// for more readable error messages (e.g., "filterLibraries" -> "library filter")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":            "path",
		"key":             "preference key",
		"directories":     "directories",
		"filterLibraries": "library filter",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateAbsolutePath checks that a launch payload is an absolute path
func ValidateAbsolutePath(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be absolute, got: %s", formatFieldName(fieldName), path),
		}
	}
	return nil
}

// ValidatePreferenceKey checks that key names a known preference
func ValidatePreferenceKey(key string) error {
	switch key {
	case domain.PrefDirectories, domain.PrefFilterLibraries:
		return nil
	}
	return fmt.Errorf("%w: %q (expected %s or %s)",
		ErrUnknownPreference, key, domain.PrefDirectories, domain.PrefFilterLibraries)
}
