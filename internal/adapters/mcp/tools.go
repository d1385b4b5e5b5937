package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"execlauncher/internal/domain"
)

// Service is the pipeline exposed over MCP
type Service interface {
	Query(ctx context.Context, raw string) []domain.ResultItem
	LaunchChecked(ctx context.Context, payload string) error
	Settings() domain.Settings
}

// RegisterTools adds the finder tools to the MCP server.
func RegisterTools(s *server.MCPServer, svc Service) {
	s.AddTool(findTool(), findHandler(svc))
	s.AddTool(launchTool(), launchHandler(svc))
	s.AddTool(showConfigTool(), showConfigHandler(svc))
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool("find_executables",
		mcp.WithDescription(fmt.Sprintf("Find shell scripts and ELF binaries in the configured directories whose file name contains the query. Returns at most %d results, prefix matches first.", domain.MaxResults)),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring of the file name. Omit to list everything."),
		),
	)
}

func findHandler(svc Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		items := svc.Query(ctx, query)
		if len(items) == 0 {
			return mcp.NewToolResultText("No executables found in the configured directories."), nil
		}

		var sb strings.Builder
		for _, item := range items {
			fmt.Fprintf(&sb, "%s  %s  %s\n", item.Name, item.Path, item.Description)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- launch ---

func launchTool() mcp.Tool {
	return mcp.NewTool("launch_executable",
		mcp.WithDescription("Start an executable in the background. The path must be an absolute path to a shell script or ELF binary with the execute bit set. Output and exit status are not reported."),
		mcp.WithString("path",
			mcp.Description("Absolute path, as returned by find_executables"),
			mcp.Required(),
		),
	)
}

func launchHandler(svc Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		if err := svc.LaunchChecked(ctx, path); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Launched %s", path)), nil
	}
}

// --- show_config ---

func showConfigTool() mcp.Tool {
	return mcp.NewTool("show_config",
		mcp.WithDescription("Show the directories that are searched and whether library-like files are filtered out."),
	)
}

func showConfigHandler(svc Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(FormatSettings(svc.Settings())), nil
	}
}

// FormatSettings renders settings as plain text
func FormatSettings(settings domain.Settings) string {
	var sb strings.Builder
	sb.WriteString("directories:\n")
	if len(settings.Roots) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, root := range settings.Roots {
		fmt.Fprintf(&sb, "  %s\n", root)
	}
	fmt.Fprintf(&sb, "filter_libraries: %t\n", settings.FilterLibraries)
	return sb.String()
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
