// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipStatus is the connectivity/activity status of a ship.
type ShipStatus string

const (
	ShipStatusDisconnected     ShipStatus = "DISCONNECTED"
	ShipStatusConnected        ShipStatus = "CONNECTED"
	ShipStatusPositionDeclared ShipStatus = "POSITION_DECLARED"
	ShipStatusActive           ShipStatus = "ACTIVE"
	ShipStatusInactive         ShipStatus = "INACTIVE"
)

// Ship represents a registered vessel. Only Status and LastShipNotificationID are written by the engine.
type Ship struct {
	ID                     uuid.UUID  `json:"id"`                                  // The Global Unique Identifier (GUID) for the ship.
	Code                   string     `json:"code"`                                // Registration code / plate.
	Name                   string     `json:"name"`                                // Display name.
	OwnerUserID            *uuid.UUID `json:"owner_user_id,omitempty"`             // The user who receives push notifications for this ship.
	Status                 ShipStatus `json:"status"`                              // Current status.
	LastShipNotificationID *uuid.UUID `json:"last_ship_notification_id,omitempty"` // Most recent notification raised for the ship.
	TrackingEnabled        bool       `json:"tracking_enabled"`                    // Whether the engine polls the ship's position source.
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// IsEvaluable reports whether position samples for the ship should be evaluated.
func (s *Ship) IsEvaluable() bool {
	return s.Status != ShipStatusInactive
}
