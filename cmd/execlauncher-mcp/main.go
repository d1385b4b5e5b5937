package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "execlauncher/internal/adapters/mcp"
	"execlauncher/internal/bootstrap"
	"execlauncher/internal/config"
)

func main() {
	dirsFlag := flag.String("dirs", "", "comma-separated directories to search (overrides stored preferences)")
	filterFlag := flag.String("filter-libs", "", "exclude library-like files (true/false)")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr
	rt, err := bootstrap.Open(context.Background(), bootstrap.Options{
		Prefix:    "execlauncher-mcp",
		LogOutput: os.Stderr,
		Debug:     *debugFlag,
		Overrides: config.Overrides{
			Directories:     *dirsFlag,
			FilterLibraries: *filterFlag,
		},
	})
	if err != nil {
		bootstrap.NewLogger(os.Stderr, "execlauncher-mcp", false).Fatal("startup failed", "err", err)
	}
	defer rt.Close()

	mcpServer := server.NewMCPServer(
		"execlauncher-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, rt.Service)

	if err := server.ServeStdio(mcpServer); err != nil {
		rt.Logger.Fatal("server stopped", "err", err)
	}
}
