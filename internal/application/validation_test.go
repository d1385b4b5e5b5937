package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "path",
			value:     "/usr/bin/htop",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "path",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "path",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateAbsolutePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"absolute", "/usr/bin/htop", false},
		{"relative", "bin/htop", true},
		{"bare name", "htop", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAbsolutePath("path", tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAbsolutePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePreferenceKey(t *testing.T) {
	for _, key := range []string{"directories", "filter_libraries"} {
		if err := ValidatePreferenceKey(key); err != nil {
			t.Errorf("ValidatePreferenceKey(%q) = %v", key, err)
		}
	}

	err := ValidatePreferenceKey("theme")
	if !errors.Is(err, ErrUnknownPreference) {
		t.Errorf("expected ErrUnknownPreference, got %v", err)
	}
}

func TestLaunchError_IsNotExecutable(t *testing.T) {
	err := error(&LaunchError{Path: "/tmp/x", Reason: "missing execute bit"})

	if !errors.Is(err, ErrNotExecutable) {
		t.Error("expected LaunchError to match ErrNotExecutable")
	}
	if err.Error() != "cannot launch /tmp/x: missing execute bit" {
		t.Errorf("unexpected message: %s", err)
	}
}
