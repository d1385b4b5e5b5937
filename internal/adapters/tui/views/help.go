package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"execlauncher/internal/adapters/tui/styles"
	"execlauncher/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc/q/f1", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width    int
	height   int
	settings domain.Settings
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// SetSettings sets the configuration shown in the help view
func (m *HelpModel) SetSettings(settings domain.Settings) {
	m.settings = settings
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToFinderMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Executable Launcher Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Find and launch scripts and ELF binaries"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(helpLine("type", "Filter by file name"))
	b.WriteString(helpLine("↑ / ↓ / Ctrl+P / Ctrl+N", "Move up/down"))
	b.WriteString(helpLine("Enter", "Launch and quit"))
	b.WriteString(helpLine("Ctrl+Y", "Copy executable path"))
	b.WriteString(helpLine("F1", "Toggle help"))
	b.WriteString(helpLine("Esc / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Directories"))
	b.WriteString("\n")
	if len(m.settings.Roots) == 0 {
		b.WriteString(styles.MutedText.Render("  (none configured)"))
		b.WriteString("\n")
	}
	for _, root := range m.settings.Roots {
		b.WriteString(styles.MutedText.Render("  " + root))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	filter := "off"
	if m.settings.FilterLibraries {
		filter = "on"
	}
	b.WriteString(styles.InputLabel.Render("Library filter"))
	b.WriteString(styles.MutedText.Render("  " + filter))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("f1"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 26)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
