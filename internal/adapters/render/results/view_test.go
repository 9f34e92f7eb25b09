package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solenne/whittle/internal/domain"
)

func TestRenderEmptyHistory(t *testing.T) {
	output, err := Render(nil, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "games: 0, won: 0")
	assert.Contains(t, output, "No finished games yet.")
}

func TestRenderListsOutcomes(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	history := []domain.GameResult{
		{
			SessionID:      "game-1",
			Outcome:        domain.OutcomeWon,
			ExclusionsUsed: 3,
			Hint:           "nocturnal",
			FinishedAt:     now.Add(-30 * time.Minute),
		},
		{
			SessionID:      "game-2",
			Outcome:        domain.OutcomeLost,
			ExclusionsUsed: 1,
			FinishedAt:     now.Add(-2 * 24 * time.Hour),
		},
	}

	output, err := Render(history, RenderOptions{Now: now})
	require.NoError(t, err)

	assert.Contains(t, output, "games: 2, won: 1")
	assert.Contains(t, output, "won")
	assert.Contains(t, output, "lost")
	assert.Contains(t, output, "3 exclusions, hint: nocturnal")
	assert.Contains(t, output, "(30m ago)")
	assert.Contains(t, output, "(2d ago)")
}

func TestFormatFinished(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		finishedAt time.Time
		want       string
	}{
		{name: "zero time", finishedAt: time.Time{}, want: ""},
		{name: "seconds ago", finishedAt: now.Add(-20 * time.Second), want: "(just now)"},
		{name: "minutes ago", finishedAt: now.Add(-5 * time.Minute), want: "(5m ago)"},
		{name: "hours ago", finishedAt: now.Add(-3 * time.Hour), want: "(3h ago)"},
		{name: "days ago", finishedAt: now.Add(-50 * time.Hour), want: "(2d ago)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFinished(tt.finishedAt, now))
		})
	}
}
