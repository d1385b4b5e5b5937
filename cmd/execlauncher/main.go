package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"execlauncher/internal/adapters/tui"
	"execlauncher/internal/bootstrap"
	"execlauncher/internal/config"
)

func main() {
	dirsFlag := flag.String("dirs", "", "comma-separated directories to search (overrides stored preferences)")
	filterFlag := flag.String("filter-libs", "", "exclude library-like files (true/false)")
	debugFlag := flag.Bool("debug", false, "write debug logs to stderr")
	flag.Parse()

	// Logging to stderr would corrupt the alt screen
	var logOutput io.Writer = io.Discard
	if *debugFlag || config.Debug() {
		logOutput = os.Stderr
	}

	rt, err := bootstrap.Open(context.Background(), bootstrap.Options{
		Prefix:    "execlauncher",
		LogOutput: logOutput,
		Debug:     *debugFlag,
		Overrides: config.Overrides{
			Directories:     *dirsFlag,
			FilterLibraries: *filterFlag,
		},
		Notifier: bootstrap.DesktopNotifier,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	app := tui.NewApp(rt.Service)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if item, ok := app.Launched(); ok {
		fmt.Println(item.Description)
	}
}
