package repository

import (
	"context"
	"errors"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShipNotFound is returned when a ship is not found.
var ErrShipNotFound = errors.New("ship not found")

// ShipRepository reads the ship registry and writes the two fields the engine owns.
type ShipRepository interface {
	// FindByID retrieves a single ship by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ship, error)

	// FindTracked returns ships with tracking enabled that are not INACTIVE.
	FindTracked(ctx context.Context) ([]*entity.Ship, error)

	// UpdateStatus changes the status of a ship.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShipStatus) error

	// UpdateLastNotification points the ship at its most recent notification.
	UpdateLastNotification(ctx context.Context, id, notificationID uuid.UUID) error
}
