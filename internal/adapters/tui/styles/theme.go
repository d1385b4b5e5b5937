package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("#22D3EE") // Cyan
	Match   = lipgloss.Color("#A3E635") // Lime
	Subtle  = lipgloss.Color("#94A3B8") // Slate
	Danger  = lipgloss.Color("#F87171") // Rose
	OnLight = lipgloss.Color("#0F172A")

	App = lipgloss.NewStyle().Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().Foreground(Subtle).Italic(true)

	// Picker rows
	ResultName = lipgloss.NewStyle().Foreground(Match)
	Selected   = lipgloss.NewStyle().
			Background(Accent).
			Foreground(OnLight).
			Bold(true)

	// Query prompt
	InputLabel   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Accent)

	HelpKey  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Subtle)

	Success   = lipgloss.NewStyle().Foreground(Match).Bold(true)
	ErrorMsg  = lipgloss.NewStyle().Foreground(Danger).Bold(true)
	MutedText = lipgloss.NewStyle().Foreground(Subtle)
)
