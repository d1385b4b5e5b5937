package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"execlauncher/internal/adapters/tui/views"
	"execlauncher/internal/domain"
)

// Service is the pipeline the TUI drives
type Service interface {
	views.Finder
	Launch(ctx context.Context, payload string)
	Settings() domain.Settings
}

// ViewState represents the current view
type ViewState int

const (
	ViewFinder ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	svc Service

	state  ViewState
	finder *views.FinderModel
	help   *views.HelpModel

	launched *domain.ResultItem

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(svc Service) *App {
	return &App{
		svc:    svc,
		state:  ViewFinder,
		finder: views.NewFinderModel(svc),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.finder.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.finder.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.help.SetSettings(a.svc.Settings())
		a.state = ViewHelp
		return a, nil

	case views.SwitchToFinderMsg:
		a.state = ViewFinder
		return a, nil

	case views.LaunchMsg:
		// Fire and forget, then close like the launcher window would
		item := msg.Item
		a.svc.Launch(context.Background(), item.Path)
		a.launched = &item
		return a, tea.Quit
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewFinder:
		_, cmd = a.finder.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// Launched returns the item launched before quitting, if any
func (a *App) Launched() (domain.ResultItem, bool) {
	if a.launched == nil {
		return domain.ResultItem{}, false
	}
	return *a.launched, true
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.finder.View()
	}
}
