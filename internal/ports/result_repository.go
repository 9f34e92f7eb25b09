package ports

import (
	"context"

	"github.com/solenne/whittle/internal/domain"
)

type ResultRepository interface {
	Append(ctx context.Context, result domain.GameResult) error
	List(ctx context.Context) ([]domain.GameResult, error)
}
