package application

import "github.com/solenne/whittle/internal/domain"

// Snapshot is what the presentation layer consumes: a value copy of the
// session, the busy flag for disabling controls, per-candidate feedback, and
// the most recent failure to display. Feedback is advisory presentation
// state; action legality is decided by the controller alone.
type Snapshot struct {
	Session     *domain.SessionState
	Busy        bool
	Feedback    map[domain.CandidateKey]domain.FeedbackClass
	LastFailure *domain.Failure
}

func (s Snapshot) HasSession() bool {
	return s.Session != nil
}

func (s Snapshot) InProgress() bool {
	return s.Session != nil && s.Session.Phase == domain.PhaseInProgress
}
