package application

import (
	"context"
	"sync"

	"github.com/solenne/whittle/internal/domain"
	"github.com/solenne/whittle/internal/ports"
)

// Controller owns the single current session. It is the only component that
// holds or mutates SessionState; everything else reads value snapshots. At
// most one network operation is in flight per controller at any time, and a
// second action attempted meanwhile is rejected outright, never queued.
type Controller struct {
	client  ports.GameServerClient
	results ports.ResultRepository
	clock   ports.Clock

	mu          sync.Mutex
	busy        bool
	generation  uint64
	session     *domain.SessionState
	pending     *domain.PendingAction
	lastFailure *domain.Failure
}

// NewController wires a controller. results may be nil when finished games
// should not be recorded.
func NewController(client ports.GameServerClient, results ports.ResultRepository, clock ports.Clock) *Controller {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Controller{
		client:  client,
		results: results,
		clock:   clock,
	}
}

// StartSession discards any current session and asks the server for a fresh
// one. On failure the controller reverts to having no session at all.
func (c *Controller) StartSession(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.busy {
		return c.rejectLocked(domain.BusyFailure())
	}
	c.busy = true
	c.pending = nil
	c.lastFailure = nil
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	state, err := c.client.StartSession(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if generation != c.generation {
		// The controller was reset while this request was in flight; the
		// response belongs to a superseded session and must not resurrect it.
		return c.snapshotLocked(), domain.InvalidStateFailure(domain.ReasonSessionSuperseded)
	}

	if err != nil {
		failure := asFailure(err)
		c.session = nil
		c.lastFailure = failure
		return c.snapshotLocked(), failure
	}

	c.session = &state
	return c.snapshotLocked(), nil
}

// ExcludeCandidate submits one exclusion for adjudication. Legality is
// checked synchronously before any network call; an illegal action never
// reaches the transport. On transport failure the session state is left
// exactly as it was, since the exclusion never happened server-side.
func (c *Controller) ExcludeCandidate(ctx context.Context, key domain.CandidateKey) (Snapshot, error) {
	c.mu.Lock()
	if failure := c.excludeGuardLocked(key); failure != nil {
		return c.rejectLocked(failure)
	}

	c.pending = &domain.PendingAction{Key: key}
	c.busy = true
	c.lastFailure = nil
	sessionID := c.session.SessionID
	c.mu.Unlock()

	state, err := c.client.SubmitExclusion(ctx, sessionID, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if c.session == nil || c.session.SessionID != sessionID {
		// A reset or newer session superseded this request; drop the result.
		return c.snapshotLocked(), domain.InvalidStateFailure(domain.ReasonSessionSuperseded)
	}

	if err != nil {
		failure := asFailure(err)
		c.lastFailure = failure
		return c.snapshotLocked(), failure
	}

	c.session = &state
	if state.Phase.Terminal() {
		c.recordResult(ctx, state)
	}

	return c.snapshotLocked(), nil
}

func (c *Controller) excludeGuardLocked(key domain.CandidateKey) *domain.Failure {
	if c.session == nil {
		return domain.InvalidStateFailure(domain.ReasonNoActiveSession)
	}
	if c.session.Phase != domain.PhaseInProgress {
		return domain.InvalidStateFailure(domain.ReasonGameEnded)
	}
	candidate, ok := c.session.FindCandidate(key)
	if !ok {
		return domain.InvalidStateFailure(domain.ReasonUnknownCandidate)
	}
	if !candidate.Available() {
		return domain.InvalidStateFailure(domain.ReasonAlreadyExcluded)
	}
	if c.busy {
		return domain.BusyFailure()
	}
	return nil
}

// Reset tears the controller down to having no session. It does not abort an
// in-flight request; that request completes on its own and its response is
// discarded by the session identity check.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = nil
	c.pending = nil
	c.lastFailure = nil
	c.generation++
}

// Snapshot returns the current read-only view for the presentation layer.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Busy:        c.busy,
		LastFailure: c.lastFailure,
	}

	if c.session != nil {
		cloned := c.session.Clone()
		snapshot.Session = &cloned
		snapshot.Feedback = domain.ResolveFeedback(*c.session, c.pending)
	}

	return snapshot
}

func (c *Controller) rejectLocked(failure *domain.Failure) (Snapshot, error) {
	c.lastFailure = failure
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	return snapshot, failure
}

func (c *Controller) recordResult(ctx context.Context, state domain.SessionState) {
	if c.results == nil {
		return
	}

	outcome := domain.OutcomeWon
	if state.Phase == domain.PhaseLost {
		outcome = domain.OutcomeLost
	}

	// Best effort: a failed append never fails the exclusion that ended the
	// game.
	_ = c.results.Append(ctx, domain.GameResult{
		SessionID:      state.SessionID,
		Outcome:        outcome,
		ExclusionsUsed: state.ExcludedCount(),
		Hint:           state.Hint,
		FinishedAt:     c.clock.Now(),
	})
}

func asFailure(err error) *domain.Failure {
	if failure, ok := err.(*domain.Failure); ok {
		return failure
	}
	return domain.TransportFailure(err)
}
