package entity

import (
	"time"

	"github.com/google/uuid"
)

// BorderPoint is one vertex of a maritime boundary line.
type BorderPoint struct {
	ID           uuid.UUID `json:"id"`
	BoundaryCode string    `json:"boundary_code"` // Points sharing a code form one boundary.
	Sequence     int       `json:"sequence"`      // Order of the point along its boundary.
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Closed       bool      `json:"closed"` // Marks the boundary as a closed polygon.
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
