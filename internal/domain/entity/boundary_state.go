package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoundaryZone classifies where a ship was relative to a boundary after its last evaluated sample.
type BoundaryZone string

const (
	BoundaryZoneClear   BoundaryZone = "CLEAR"
	BoundaryZoneNear    BoundaryZone = "NEAR"
	BoundaryZoneCrossed BoundaryZone = "CROSSED"
)

// BoundaryState is the per-ship, per-boundary memory the geofence evaluator compares new samples against.
type BoundaryState struct {
	ShipID             uuid.UUID     `json:"ship_id"`
	BoundaryCode       string        `json:"boundary_code"`
	Side               int           `json:"side"` // -1, 0 (unknown) or +1.
	DistanceMeters     float64       `json:"distance_meters"`
	Zone               BoundaryZone  `json:"zone"`
	OpenNotificationID *uuid.UUID    `json:"open_notification_id,omitempty"`
	Pending            *PendingRaise `json:"pending,omitempty"`
	LastSampleAt       time.Time     `json:"last_sample_at"`
}

// PendingRaise is written together with the state that detected an event, before the
// notification exists. A later evaluation that cannot find the notification creates it from here.
type PendingRaise struct {
	NotificationID uuid.UUID     `json:"notification_id"`
	Event          GeofenceEvent `json:"event"`
	DistanceMeters float64       `json:"distance_meters"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	ObservedAt     time.Time     `json:"observed_at"`
}

// AwaitsNotification reports whether b holds a pending raise for its linked notification.
func (b *BoundaryState) AwaitsNotification() bool {
	return b != nil && b.Pending != nil && b.OpenNotificationID != nil &&
		b.Pending.NotificationID == *b.OpenNotificationID
}

// ShipBoundaryState is everything remembered about one ship across all boundaries.
// Version guards compare-and-swap writes; zero means nothing has been stored yet.
type ShipBoundaryState struct {
	ShipID     uuid.UUID                 `json:"ship_id"`
	Boundaries map[string]*BoundaryState `json:"boundaries"`
	Version    int64                     `json:"version"`
}

// NewShipBoundaryState returns an empty, never-stored state for a ship.
func NewShipBoundaryState(shipID uuid.UUID) *ShipBoundaryState {
	return &ShipBoundaryState{ShipID: shipID, Boundaries: make(map[string]*BoundaryState)}
}

// Clone returns a deep copy so callers can mutate it without touching a cached value.
func (s *ShipBoundaryState) Clone() *ShipBoundaryState {
	out := &ShipBoundaryState{ShipID: s.ShipID, Version: s.Version, Boundaries: make(map[string]*BoundaryState, len(s.Boundaries))}
	for code, b := range s.Boundaries {
		cp := *b
		if b.OpenNotificationID != nil {
			id := *b.OpenNotificationID
			cp.OpenNotificationID = &id
		}
		if b.Pending != nil {
			pending := *b.Pending
			cp.Pending = &pending
		}
		out.Boundaries[code] = &cp
	}

	return out
}

// GeofenceEvent is the outcome of evaluating one sample against one boundary.
type GeofenceEvent string

const (
	GeofenceEventNoChange    GeofenceEvent = "NO_CHANGE"
	GeofenceEventCleared     GeofenceEvent = "CLEARED"
	GeofenceEventNearWarning GeofenceEvent = "NEAR_WARNING"
	GeofenceEventCrossed     GeofenceEvent = "CROSSED"
)

// Rank orders events for aggregation; higher wins.
func (e GeofenceEvent) Rank() int {
	switch e {
	case GeofenceEventCrossed:
		return 3
	case GeofenceEventNearWarning:
		return 2
	case GeofenceEventCleared:
		return 1
	default:
		return 0
	}
}

// BoundaryOutcome is the per-boundary part of an evaluation.
type BoundaryOutcome struct {
	BoundaryCode   string        `json:"boundary_code"`
	Event          GeofenceEvent `json:"event"`
	DistanceMeters float64       `json:"distance_meters"`
	NotificationID *uuid.UUID    `json:"notification_id,omitempty"`
}

// GeofenceResult aggregates the outcomes of evaluating one sample.
type GeofenceResult struct {
	ShipID   uuid.UUID         `json:"ship_id"`
	Event    GeofenceEvent     `json:"event"`
	Outcomes []BoundaryOutcome `json:"outcomes"`
	Skipped  bool              `json:"skipped"` // No boundary could be evaluated.
}
