package usecase

import (
	"context"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportResult summarises a boundary file import.
type ImportResult struct {
	Boundaries []string `json:"boundaries"`
	Points     int      `json:"points"`
}

// BorderUsecase defines the administrative operations on border points
type BorderUsecase interface {
	CreatePoint(ctx context.Context, point *entity.BorderPoint) (*entity.BorderPoint, error)
	UpdatePoint(ctx context.Context, point *entity.BorderPoint) (*entity.BorderPoint, error)
	DeletePoint(ctx context.Context, id uuid.UUID) error
	GetPoint(ctx context.Context, id uuid.UUID) (*entity.BorderPoint, error)
	ListPoints(ctx context.Context, boundaryCode string) ([]*entity.BorderPoint, error)

	// Import replaces the boundaries found in a GeoJSON file. Features without a code
	// property use defaultCode.
	Import(ctx context.Context, url, defaultCode string) (*ImportResult, error)
}
