package service

import (
	"context"

	"vesselwatch/internal/domain/entity"
)

// PositionSource fetches the current position of a ship from an external tracker.
type PositionSource interface {
	Fetch(ctx context.Context, ship *entity.Ship) (*entity.PositionSample, error)
}
