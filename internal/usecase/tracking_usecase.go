package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TrackingUsecase runs one polling task per tracked ship.
type TrackingUsecase interface {
	// Start begins polling a ship. Starting a running ship is a no-op.
	Start(ctx context.Context, shipID uuid.UUID) error

	// Stop cancels the ship's task and reports whether one was running.
	Stop(shipID uuid.UUID) bool

	// StartAll starts every tracking-enabled ship.
	StartAll(ctx context.Context) (int, error)

	// StopAll cancels every task and waits for them to exit.
	StopAll()

	// Running lists the ships currently being polled.
	Running() []uuid.UUID
}
