package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/solenne/whittle/internal/domain"
)

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	hint        lipgloss.Style
	explanation lipgloss.Style
	footer      lipgloss.Style
	failure     lipgloss.Style
	empty       lipgloss.Style
	cursor      lipgloss.Style
	available   lipgloss.Style
	excluded    lipgloss.Style
	correct     lipgloss.Style
	incorrect   lipgloss.Style
	lost        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		hint:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		explanation: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		failure:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:       lipgloss.NewStyle().Faint(true),
		cursor:      lipgloss.NewStyle().Bold(true),
		available:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		excluded:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("244")),
		correct:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		incorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		lost:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (s styles) forClass(class domain.FeedbackClass) lipgloss.Style {
	switch class {
	case domain.FeedbackCorrect:
		return s.correct
	case domain.FeedbackIncorrect:
		return s.incorrect
	case domain.FeedbackLost:
		return s.lost
	case domain.FeedbackExcluded:
		return s.excluded
	default:
		return s.available
	}
}
