package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PositionSample is one observed position of a ship.
type PositionSample struct {
	ShipID     uuid.UUID `json:"ship_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	ObservedAt time.Time `json:"observed_at"`
	Source     string    `json:"source"`
}

// IsValid reports whether the sample carries a usable coordinate and timestamp.
func (p *PositionSample) IsValid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}

	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180 &&
		!p.ObservedAt.IsZero()
}
