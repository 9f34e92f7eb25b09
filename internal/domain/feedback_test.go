package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCandidateState(phase Phase, lastGuessValid bool) SessionState {
	return SessionState{
		SessionID: "game-1",
		Phase:     phase,
		Roster: []Candidate{
			{ID: 10, DisplayName: "Lynx", Status: CandidateExcluded},
			{ID: 11, DisplayName: "Ocelot", Status: CandidateAvailable},
		},
		LastGuessValid: lastGuessValid,
	}
}

func TestResolveFeedbackWithoutPendingAction(t *testing.T) {
	t.Parallel()

	feedback := ResolveFeedback(twoCandidateState(PhaseInProgress, false), nil)

	assert.Equal(t, FeedbackExcluded, feedback[CandidateKey{ID: 10}])
	assert.Equal(t, FeedbackAvailable, feedback[CandidateKey{ID: 11}])
}

func TestResolveFeedbackPendingClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		phase          Phase
		lastGuessValid bool
		want           FeedbackClass
	}{
		{name: "wrong guess but game continues", phase: PhaseInProgress, lastGuessValid: false, want: FeedbackIncorrect},
		{name: "correct guess", phase: PhaseWon, lastGuessValid: true, want: FeedbackCorrect},
		{name: "losing guess overrides valid flag", phase: PhaseLost, lastGuessValid: true, want: FeedbackLost},
		{name: "losing guess with invalid flag", phase: PhaseLost, lastGuessValid: false, want: FeedbackLost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := twoCandidateState(tt.phase, tt.lastGuessValid)
			pending := &PendingAction{Key: CandidateKey{ID: 10}}

			feedback := ResolveFeedback(state, pending)
			assert.Equal(t, tt.want, feedback[CandidateKey{ID: 10}])
			assert.Equal(t, FeedbackAvailable, feedback[CandidateKey{ID: 11}])
		})
	}
}

func TestResolveFeedbackMatchesCompoundKey(t *testing.T) {
	t.Parallel()

	state := SessionState{
		SessionID: "game-2",
		Phase:     PhaseInProgress,
		Roster: []Candidate{
			{ID: 10, Form: "alpine", DisplayName: "Marmot (alpine)", Status: CandidateExcluded},
			{ID: 10, Form: "steppe", DisplayName: "Marmot (steppe)", Status: CandidateAvailable},
		},
	}
	pending := &PendingAction{Key: CandidateKey{ID: 10, Form: "alpine"}}

	feedback := ResolveFeedback(state, pending)

	assert.Equal(t, FeedbackIncorrect, feedback[CandidateKey{ID: 10, Form: "alpine"}])
	assert.Equal(t, FeedbackAvailable, feedback[CandidateKey{ID: 10, Form: "steppe"}])
}

func TestResolveFeedbackIsPure(t *testing.T) {
	t.Parallel()

	state := twoCandidateState(PhaseInProgress, false)
	pending := &PendingAction{Key: CandidateKey{ID: 10}}

	first := ResolveFeedback(state, pending)
	second := ResolveFeedback(state, pending)

	require.Equal(t, first, second)
	assert.Equal(t, CandidateExcluded, state.Roster[0].Status)
}
