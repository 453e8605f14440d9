package repository

import (
	"context"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// BoundaryStateStore keeps the per-ship boundary memory of the geofence evaluator.
// Writes are compare-and-swap on the snapshot version so concurrent evaluations
// of the same ship cannot overwrite each other.
type BoundaryStateStore interface {
	// Load returns the stored state of a ship, or an empty state with version 0.
	Load(ctx context.Context, shipID uuid.UUID) (*entity.ShipBoundaryState, error)

	// CompareAndSwap stores state if the stored version still equals state.Version.
	// On success the stored version is state.Version+1 and true is returned.
	CompareAndSwap(ctx context.Context, state *entity.ShipBoundaryState) (bool, error)

	// Delete forgets everything about a ship.
	Delete(ctx context.Context, shipID uuid.UUID) error
}
