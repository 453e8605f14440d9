package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BorderPointModel is the GORM-specific struct for the 'border_points' table.
// Points sharing boundary_code form one boundary, ordered by sequence.
type BorderPointModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoundaryCode string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_border_points_code_seq,priority:1"`
	Sequence     int       `gorm:"not null;uniqueIndex:idx_border_points_code_seq,priority:2"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	Closed       bool      `gorm:"not null;default:false"`
	Note         string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BorderPointModel) TableName() string {
	return "border_points"
}

// BeforeCreate assigns an ID when none was set.
func (m *BorderPointModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ShipBoundaryStateModel is the GORM-specific struct for the 'ship_boundary_states' table.
// Boundaries holds the per-boundary memory as JSON; Version guards compare-and-swap writes.
type ShipBoundaryStateModel struct {
	ShipID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Version    int64          `gorm:"not null"`
	Boundaries datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipBoundaryStateModel) TableName() string {
	return "ship_boundary_states"
}
