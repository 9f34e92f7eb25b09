package ports

import (
	"context"

	"github.com/solenne/whittle/internal/domain"
)

// GameServerClient performs the two network operations against the remote
// game server. The server is the sole authority on whether an exclusion is
// legal, correct, or ends the game; implementations never retry.
type GameServerClient interface {
	StartSession(ctx context.Context) (domain.SessionState, error)
	SubmitExclusion(ctx context.Context, sessionID string, key domain.CandidateKey) (domain.SessionState, error)
}
