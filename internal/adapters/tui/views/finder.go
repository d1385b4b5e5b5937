package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"execlauncher/internal/adapters/tui/styles"
	"execlauncher/internal/domain"
)

// Finder runs queries for the finder view
type Finder interface {
	Query(ctx context.Context, raw string) []domain.ResultItem
}

// FinderKeyMap defines key bindings for the finder view
type FinderKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Launch key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var FinderKeys = FinderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// FinderModel is the model for the finder view
type FinderModel struct {
	ViewState
	finder    Finder
	input     textinput.Model
	query     string // Query the current results belong to
	results   []domain.ResultItem
	cursor    int
	searching bool
	cancel    context.CancelFunc // Cancels the scan in flight
	seq       int                // Identifies the latest scan
}

// NewFinderModel creates a new finder view model
func NewFinderModel(finder Finder) *FinderModel {
	input := textinput.New()
	input.Placeholder = "Type to filter executables..."
	input.Focus()

	return &FinderModel{
		finder: finder,
		input:  input,
	}
}

// Init starts the cursor blink and the initial unfiltered query
func (m *FinderModel) Init() tea.Cmd {
	m.searching = true
	return tea.Batch(textinput.Blink, m.search(""))
}

// Update handles messages for the finder view
func (m *FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case finderResultsMsg:
		// Drop results for a query the user has already typed past
		if msg.seq != m.seq || msg.query != m.input.Value() {
			return m, nil
		}
		m.query = msg.query
		m.results = msg.results
		m.cursor = 0
		m.searching = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FinderKeys.Quit):
			m.cancelSearch()
			return m, tea.Quit

		case key.Matches(msg, FinderKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}

		case key.Matches(msg, FinderKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Launch):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return LaunchMsg{Item: item}
				}
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Copy):
			if item, ok := m.Selected(); ok {
				if err := clipboard.WriteAll(item.Path); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage("Copied "+item.Path, false)
				}
			}
			return m, nil
		}
	}

	prev := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != prev {
		m.ClearMessage()
		m.searching = true
		return m, tea.Batch(cmd, m.search(query))
	}

	return m, cmd
}

// search supersedes any running scan; a cancelled scan stops walking and
// its results are dropped.
func (m *FinderModel) search(query string) tea.Cmd {
	m.cancelSearch()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++

	finder, seq := m.finder, m.seq
	return func() tea.Msg {
		return finderResultsMsg{
			seq:     seq,
			query:   query,
			results: finder.Query(ctx, query),
		}
	}
}

func (m *FinderModel) cancelSearch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

type finderResultsMsg struct {
	seq     int
	query   string
	results []domain.ResultItem
}

// LaunchMsg is sent when a result is chosen
type LaunchMsg struct {
	Item domain.ResultItem
}

// Selected returns the result under the cursor
func (m *FinderModel) Selected() (domain.ResultItem, bool) {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return m.results[m.cursor], true
	}
	return domain.ResultItem{}, false
}

// Results returns the displayed results
func (m *FinderModel) Results() []domain.ResultItem {
	return m.results
}

// View renders the finder view
func (m *FinderModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Launch"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.searching && len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("Scanning..."))
	case len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No executables found"))
	default:
		for i, item := range m.results {
			b.WriteString(m.renderResult(item, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("launch"),
		styles.HelpKey.Render("ctrl+y"),
		styles.HelpDesc.Render("copy path"),
		styles.HelpKey.Render("f1"),
		styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *FinderModel) renderResult(item domain.ResultItem, selected bool) string {
	if selected {
		return styles.Selected.Render(item.Name) + " " + styles.Subtitle.Render(item.Description)
	}
	return styles.ResultName.Render(item.Name) + " " + styles.MutedText.Render(item.Description)
}
