package results

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	empty  lipgloss.Style
	won    lipgloss.Style
	lost   lipgloss.Style
	detail lipgloss.Style
	when   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:  lipgloss.NewStyle().Faint(true),
		won:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		lost:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		when:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
