package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solenne/whittle/internal/application"
	"github.com/solenne/whittle/internal/domain"
)

// Options controls the interactive decorations around the candidate list.
type Options struct {
	// Cursor is the roster index the selection marker sits on, -1 for none.
	Cursor int
	// Spinner is the in-flight indicator frame, empty when idle.
	Spinner string
}

// View renders one frame of the session board from a controller snapshot.
// All color decisions live here; the feedback classification itself comes
// from the snapshot and is never recomputed in this layer.
func View(snapshot application.Snapshot, opts Options) string {
	s := newStyles()

	lines := []string{s.title.Render("Whittle")}

	if !snapshot.HasSession() {
		lines = append(lines, s.empty.Render("No game in progress. Press n to start one."))
		return joinLines(lines, snapshot, s)
	}

	session := snapshot.Session
	lines = append(lines, s.header.Render(headerLine(*session)))
	if session.Hint != "" {
		lines = append(lines, s.hint.Render("Hint: "+session.Hint))
	}

	for i, candidate := range session.Roster {
		lines = append(lines, candidateLine(i, candidate, snapshot, opts, s))
	}

	if session.Explanation != "" {
		lines = append(lines, s.explanation.Render(session.Explanation))
	}

	lines = append(lines, s.footer.Render(footerLine(snapshot, opts)))
	return joinLines(lines, snapshot, s)
}

func joinLines(lines []string, snapshot application.Snapshot, s styles) string {
	if snapshot.LastFailure != nil {
		lines = append(lines, s.failure.Render(snapshot.LastFailure.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(session domain.SessionState) string {
	switch session.Phase {
	case domain.PhaseWon:
		return "You found it!"
	case domain.PhaseLost:
		return "Game over."
	default:
		return fmt.Sprintf("%d candidates, %d exclusions expected", len(session.Roster), session.ExpectedRemaining)
	}
}

func candidateLine(index int, candidate domain.Candidate, snapshot application.Snapshot, opts Options, s styles) string {
	marker := "  "
	if index == opts.Cursor {
		marker = s.cursor.Render("> ")
	}

	label := candidate.DisplayName
	if candidate.Form != "" {
		label += " (" + candidate.Form + ")"
	}

	class := snapshot.Feedback[candidate.Key()]
	line := marker + s.forClass(class).Render(label)

	if badge := classBadge(class); badge != "" {
		line += " " + s.forClass(class).Render(badge)
	}
	return line
}

func classBadge(class domain.FeedbackClass) string {
	switch class {
	case domain.FeedbackCorrect:
		return "[correct]"
	case domain.FeedbackIncorrect:
		return "[wrong]"
	case domain.FeedbackLost:
		return "[lost]"
	default:
		return ""
	}
}

func footerLine(snapshot application.Snapshot, opts Options) string {
	if snapshot.Busy {
		return strings.TrimSpace(opts.Spinner + " waiting for server...")
	}
	if snapshot.InProgress() {
		return "up/down move, enter exclude, n new game, q quit"
	}
	return "n new game, q quit"
}
