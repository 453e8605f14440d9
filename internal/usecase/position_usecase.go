package usecase

import (
	"context"

	"vesselwatch/internal/domain/entity"
)

// PositionUsecase accepts position samples at the API edge.
type PositionUsecase interface {
	// Report validates a sample and forwards it to the engine.
	Report(ctx context.Context, sample *entity.PositionSample) error
}
