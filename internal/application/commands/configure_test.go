package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"execlauncher/internal/application"
	"execlauncher/internal/domain"
)

func TestConfigureCommand_Execute(t *testing.T) {
	scanner := &fakeScanner{dirs: map[string]bool{"/home/me/bin": true, "/opt/tools": true}}

	cmd := NewConfigureCommand(scanner, domain.Preferences{
		Directories:     "~/bin,/missing, /opt/tools",
		FilterLibraries: true,
	})
	cmd.Home = "/home/me"

	settings, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := domain.Settings{Roots: []string{"/home/me/bin", "/opt/tools"}, FilterLibraries: true}
	if diff := cmp.Diff(want, settings); diff != "" {
		t.Errorf("Execute() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureCommand_NoValidDirectories(t *testing.T) {
	tests := []struct {
		name        string
		directories string
	}{
		{"empty", ""},
		{"only separators", " , ,"},
		{"all missing", "/missing,/gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewConfigureCommand(&fakeScanner{}, domain.Preferences{Directories: tt.directories})

			settings, err := cmd.Execute(context.Background())
			if !errors.Is(err, application.ErrNoDirectories) {
				t.Errorf("expected ErrNoDirectories, got %v", err)
			}
			if len(settings.Roots) != 0 {
				t.Errorf("expected no roots, got %v", settings.Roots)
			}
		})
	}
}
