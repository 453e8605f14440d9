// Package memory keeps ship boundary state in process memory.
// State is lost on restart; use it for single-instance deployments and tests.
package memory

import (
	"context"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

type boundaryStateStore struct {
	states *xsync.MapOf[uuid.UUID, *entity.ShipBoundaryState]
}

// NewBoundaryStateStore creates an in-memory boundary state store.
func NewBoundaryStateStore() repository.BoundaryStateStore {
	return &boundaryStateStore{states: xsync.NewMapOf[uuid.UUID, *entity.ShipBoundaryState]()}
}

// Load returns a copy of the stored state, or an empty state at version 0.
func (s *boundaryStateStore) Load(_ context.Context, shipID uuid.UUID) (*entity.ShipBoundaryState, error) {
	if state, ok := s.states.Load(shipID); ok {
		return state.Clone(), nil
	}

	return entity.NewShipBoundaryState(shipID), nil
}

// CompareAndSwap stores a copy of state if the stored version still equals state.Version.
func (s *boundaryStateStore) CompareAndSwap(_ context.Context, state *entity.ShipBoundaryState) (bool, error) {
	swapped := false

	s.states.Compute(state.ShipID, func(current *entity.ShipBoundaryState, loaded bool) (*entity.ShipBoundaryState, bool) {
		var version int64
		if loaded {
			version = current.Version
		}
		if version != state.Version {
			// keep current; deleting a missing key is a no-op
			return current, !loaded
		}

		next := state.Clone()
		next.Version = state.Version + 1
		swapped = true

		return next, false
	})

	return swapped, nil
}

// Delete forgets everything about a ship.
func (s *boundaryStateStore) Delete(_ context.Context, shipID uuid.UUID) error {
	s.states.Delete(shipID)

	return nil
}
