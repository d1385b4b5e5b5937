package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"execlauncher/internal/domain"
)

type stubService struct {
	items     []domain.ResultItem
	launchErr error
	launched  []string
	settings  domain.Settings
}

func (s *stubService) Query(ctx context.Context, raw string) []domain.ResultItem {
	return s.items
}

func (s *stubService) LaunchChecked(ctx context.Context, payload string) error {
	if s.launchErr != nil {
		return s.launchErr
	}
	s.launched = append(s.launched, payload)
	return nil
}

func (s *stubService) Settings() domain.Settings {
	return s.settings
}

func callTool(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestFindHandler(t *testing.T) {
	svc := &stubService{items: []domain.ResultItem{
		{Name: "htop", Description: "Launch htop (in ../bin)", Path: "/usr/bin/htop"},
	}}

	res, err := findHandler(svc)(context.Background(), callTool(map[string]any{"query": "ht"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), "/usr/bin/htop") {
		t.Errorf("expected path in output, got %q", resultText(t, res))
	}
}

func TestFindHandler_NoResults(t *testing.T) {
	res, err := findHandler(&stubService{})(context.Background(), callTool(nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(resultText(t, res), "No executables found") {
		t.Errorf("unexpected output %q", resultText(t, res))
	}
}

func TestLaunchHandler(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		launchErr error
		wantError bool
	}{
		{
			name: "launches path",
			args: map[string]any{"path": "/usr/bin/htop"},
		},
		{
			name:      "missing path",
			args:      map[string]any{},
			wantError: true,
		},
		{
			name:      "rejected path",
			args:      map[string]any{"path": "/etc/passwd"},
			launchErr: errors.New("cannot launch /etc/passwd: not an executable"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{launchErr: tt.launchErr}

			res, err := launchHandler(svc)(context.Background(), callTool(tt.args))
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if res.IsError != tt.wantError {
				t.Errorf("IsError = %v, want %v (%s)", res.IsError, tt.wantError, resultText(t, res))
			}
		})
	}
}

func TestFormatSettings(t *testing.T) {
	got := FormatSettings(domain.Settings{Roots: []string{"/opt/tools"}, FilterLibraries: true})
	want := "directories:\n  /opt/tools\nfilter_libraries: true\n"
	if got != want {
		t.Errorf("FormatSettings() = %q, want %q", got, want)
	}

	if !strings.Contains(FormatSettings(domain.Settings{}), "(none)") {
		t.Error("expected placeholder for empty roots")
	}
}
