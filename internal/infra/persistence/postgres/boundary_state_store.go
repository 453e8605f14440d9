package postgres

import (
	"context"
	"encoding/json"
	"time"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// boundaryStateStore keeps ship boundary state in the ship_boundary_states table.
// The version column makes every write a compare-and-swap.
type boundaryStateStore struct {
	db *gorm.DB
}

// NewBoundaryStateStore is the constructor for the relational boundary state store.
func NewBoundaryStateStore(db *gorm.DB) repository.BoundaryStateStore {
	return &boundaryStateStore{db: db}
}

// Load returns the stored state, or an empty state at version 0.
func (s *boundaryStateStore) Load(ctx context.Context, shipID uuid.UUID) (*entity.ShipBoundaryState, error) {
	var stateM model.ShipBoundaryStateModel

	err := s.db.WithContext(ctx).
		Where("ship_id = ?", shipID).
		First(&stateM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.NewShipBoundaryState(shipID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load boundary state")
	}

	state := entity.NewShipBoundaryState(shipID)
	state.Version = stateM.Version
	if len(stateM.Boundaries) > 0 {
		if err := json.Unmarshal(stateM.Boundaries, &state.Boundaries); err != nil {
			return nil, errors.Wrap(err, "failed to decode boundary state")
		}
	}

	return state, nil
}

// CompareAndSwap writes state if the stored version still equals state.Version.
func (s *boundaryStateStore) CompareAndSwap(ctx context.Context, state *entity.ShipBoundaryState) (bool, error) {
	payload, err := json.Marshal(state.Boundaries)
	if err != nil {
		return false, errors.Wrap(err, "failed to encode boundary state")
	}

	now := time.Now()

	if state.Version == 0 {
		// first write: losing the insert race means someone else stored version 1
		result := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.ShipBoundaryStateModel{
				ShipID:     state.ShipID,
				Version:    1,
				Boundaries: datatypes.JSON(payload),
				UpdatedAt:  now,
			})
		if result.Error != nil {
			return false, errors.Wrap(result.Error, "failed to insert boundary state")
		}

		return result.RowsAffected == 1, nil
	}

	result := s.db.WithContext(ctx).
		Model(&model.ShipBoundaryStateModel{}).
		Where("ship_id = ? AND version = ?", state.ShipID, state.Version).
		Updates(map[string]any{
			"version":    state.Version + 1,
			"boundaries": datatypes.JSON(payload),
			"updated_at": now,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update boundary state")
	}

	return result.RowsAffected == 1, nil
}

// Delete forgets everything about a ship.
func (s *boundaryStateStore) Delete(ctx context.Context, shipID uuid.UUID) error {
	if err := s.db.WithContext(ctx).
		Where("ship_id = ?", shipID).
		Delete(&model.ShipBoundaryStateModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete boundary state")
	}

	return nil
}
