package service

import (
	"context"

	"vesselwatch/internal/domain/entity"
)

// BoundaryLoader reads boundary definitions from a file addressed by URL (file://, gs://, mem://)
// and returns them as ordered border points.
type BoundaryLoader interface {
	// Load returns the points of every boundary in the file. Features that carry no
	// boundary code get defaultCode, suffixed with their index when there are several.
	Load(ctx context.Context, url, defaultCode string) ([]*entity.BorderPoint, error)
}
