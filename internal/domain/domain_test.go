package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateCloneDetachesRoster(t *testing.T) {
	t.Parallel()

	original := SessionState{
		SessionID: "game-1",
		Phase:     PhaseInProgress,
		Roster: []Candidate{
			{ID: 10, DisplayName: "Lynx", Status: CandidateAvailable},
		},
	}

	cloned := original.Clone()
	cloned.Roster[0].Status = CandidateExcluded

	assert.Equal(t, CandidateAvailable, original.Roster[0].Status)
}

func TestSessionStateFindCandidateUsesCompoundKey(t *testing.T) {
	t.Parallel()

	state := SessionState{
		Roster: []Candidate{
			{ID: 10, Form: "alpine"},
			{ID: 10, Form: "steppe"},
		},
	}

	candidate, ok := state.FindCandidate(CandidateKey{ID: 10, Form: "steppe"})
	require.True(t, ok)
	assert.Equal(t, "steppe", candidate.Form)

	_, ok = state.FindCandidate(CandidateKey{ID: 10})
	assert.False(t, ok)
}

func TestPhaseTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, PhaseInProgress.Terminal())
	assert.True(t, PhaseWon.Terminal())
	assert.True(t, PhaseLost.Terminal())
}

func TestFailureMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		failure *Failure
		want    string
	}{
		{name: "transport", failure: TransportFailure(errors.New("dial tcp: connection refused")), want: "server unreachable: dial tcp: connection refused"},
		{name: "server", failure: ServerFailure(503), want: "server rejected request: status 503"},
		{name: "invalid state", failure: InvalidStateFailure(ReasonGameEnded), want: "game has ended"},
		{name: "busy", failure: BusyFailure(), want: "another request is in flight"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.failure.Error())
		})
	}
}

func TestFailurePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBusy(BusyFailure()))
	assert.False(t, IsBusy(ServerFailure(500)))
	assert.False(t, IsBusy(errors.New("plain")))

	assert.True(t, IsInvalidState(InvalidStateFailure(ReasonAlreadyExcluded), ReasonAlreadyExcluded))
	assert.False(t, IsInvalidState(InvalidStateFailure(ReasonAlreadyExcluded), ReasonGameEnded))

	kind, ok := FailureKindOf(ServerFailure(404))
	require.True(t, ok)
	assert.Equal(t, KindServer, kind)
}

func TestFailureUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such host")
	failure := TransportFailure(cause)

	assert.True(t, errors.Is(failure, cause))
}
