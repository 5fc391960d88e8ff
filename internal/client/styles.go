package client

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(10)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// FormatError renders err for the terminal.
func FormatError(err error) string {
	return errorStyle.Render("error:") + " " + err.Error()
}
