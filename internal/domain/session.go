package domain

import "time"

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// SessionState is the authoritative snapshot of one played session as last
// reported by the server. It is replaced wholesale on every successful
// response, never merged.
type SessionState struct {
	SessionID         string
	Roster            []Candidate
	Phase             Phase
	Hint              string
	Explanation       string
	ExpectedRemaining int
	LastGuessValid    bool
}

// FindCandidate resolves a compound key against the roster.
func (s SessionState) FindCandidate(key CandidateKey) (Candidate, bool) {
	for _, candidate := range s.Roster {
		if candidate.Key() == key {
			return candidate, true
		}
	}
	return Candidate{}, false
}

func (s SessionState) ExcludedCount() int {
	count := 0
	for _, candidate := range s.Roster {
		if candidate.Status == CandidateExcluded {
			count++
		}
	}
	return count
}

// Clone returns a copy with its own roster backing array, so callers can
// hold a snapshot without sharing mutable state with the controller.
func (s SessionState) Clone() SessionState {
	cloned := s
	cloned.Roster = make([]Candidate, len(s.Roster))
	copy(cloned.Roster, s.Roster)
	return cloned
}

// PendingAction records the candidate most recently submitted for exclusion.
// It is presentation input only and carries no authority over game state.
type PendingAction struct {
	Key CandidateKey
}

type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// GameResult is the durable record of one finished session.
type GameResult struct {
	SessionID      string
	Outcome        Outcome
	ExclusionsUsed int
	Hint           string
	FinishedAt     time.Time
}
