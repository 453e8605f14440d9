package repository

import (
	"context"
	"errors"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBorderPointNotFound is returned when a border point is not found.
var ErrBorderPointNotFound = errors.New("border point not found")

// BorderPointRepository defines the persistence operations for boundary reference data.
type BorderPointRepository interface {
	Create(ctx context.Context, point *entity.BorderPoint) error
	Update(ctx context.Context, point *entity.BorderPoint) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BorderPoint, error)

	// List returns points ordered by boundary code then sequence. An empty code returns every boundary.
	List(ctx context.Context, boundaryCode string) ([]*entity.BorderPoint, error)

	// ReplaceBoundary swaps all points of one boundary for the given set.
	ReplaceBoundary(ctx context.Context, boundaryCode string, points []*entity.BorderPoint) error
}
