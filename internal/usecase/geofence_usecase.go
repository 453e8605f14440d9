package usecase

import (
	"context"

	"vesselwatch/internal/domain/entity"
)

// GeofenceUsecase evaluates position samples against the maritime boundaries.
type GeofenceUsecase interface {
	// Evaluate classifies a sample for every boundary, persists the new boundary state
	// and raises or resolves notifications for the detected events.
	Evaluate(ctx context.Context, sample *entity.PositionSample) (*entity.GeofenceResult, error)

	// ReloadBoundaries rebuilds the border model from the border point store.
	ReloadBoundaries(ctx context.Context) error
}
