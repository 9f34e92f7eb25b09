package results

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/solenne/whittle/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(results []domain.GameResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Whittle Results"),
		s.header.Render(fmt.Sprintf("games: %d, won: %d", len(results), wonCount(results))),
	}

	if len(results) == 0 {
		lines = append(lines, s.empty.Render("No finished games yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, result := range results {
		lines = append(lines, resultLine(result, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func wonCount(results []domain.GameResult) int {
	count := 0
	for _, result := range results {
		if result.Outcome == domain.OutcomeWon {
			count++
		}
	}
	return count
}

func resultLine(result domain.GameResult, opts RenderOptions, s styles) string {
	outcome := s.lost.Render("lost")
	if result.Outcome == domain.OutcomeWon {
		outcome = s.won.Render("won")
	}

	detail := fmt.Sprintf("%d exclusions", result.ExclusionsUsed)
	if result.Hint != "" {
		detail += ", hint: " + result.Hint
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		outcome,
		" ",
		s.detail.Render(detail),
		" ",
		s.when.Render(formatFinished(result.FinishedAt, opts.Now)),
	)
}

func formatFinished(finishedAt, now time.Time) string {
	if finishedAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		return finishedAt.Format("2006-01-02 15:04")
	}

	elapsed := now.Sub(finishedAt)
	switch {
	case elapsed < time.Minute:
		return "(just now)"
	case elapsed < time.Hour:
		return fmt.Sprintf("(%dm ago)", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("(%dh ago)", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("(%dd ago)", int(elapsed.Hours()/24))
	}
}
