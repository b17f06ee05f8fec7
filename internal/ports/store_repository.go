package ports

import (
	"context"

	"canopy/internal/domain"
)

// StoreRepository persists snapshots of the local store between runs. The
// store itself stays the in-memory source of truth; the repository only
// loads at startup and saves after mutations.
type StoreRepository interface {
	Load(ctx context.Context) ([]domain.LocalPlant, []domain.Task, error)
	Save(ctx context.Context, plants []domain.LocalPlant, tasks []domain.Task) error
	Close() error
}
