package repository

import (
	"context"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// ProgressStore persists one ProgressionState per player.
//
// Load returns domain.ErrSaveNotFound when the player has never saved.
// Save must be atomic: either the new state is stored or the previous one
// remains intact. Delete is the reset operation and succeeds when nothing
// was saved.
type ProgressStore interface {
	Load(ctx context.Context, playerID string) (*domain.ProgressionState, error)
	Save(ctx context.Context, playerID string, state domain.ProgressionState) error
	Delete(ctx context.Context, playerID string) error

	// CheckHealth reports whether the backing storage is reachable
	CheckHealth(ctx context.Context) error
}

// PlayerLister is implemented by stores that can enumerate saved players
type PlayerLister interface {
	ListPlayers(ctx context.Context) ([]string, error)
}
