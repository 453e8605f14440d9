package impl

import (
	"math"
	"time"

	"vesselwatch/internal/domain/border"
	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// openAlert is what the evaluator needs to know about the notification linked from a boundary state.
type openAlert struct {
	ID                  uuid.UUID
	Open                bool
	NearWarning         bool
	Crossed             bool
	RepeatUntilResolved bool
}

func newOpenAlert(n *entity.Notification) *openAlert {
	if n == nil {
		return nil
	}

	return &openAlert{
		ID:                  n.ID,
		Open:                n.IsOpen(),
		NearWarning:         n.BoundaryNearWarning,
		Crossed:             n.BoundaryCrossed,
		RepeatUntilResolved: n.RepeatUntilResolved,
	}
}

// boundaryDecision is the pure result of evaluating one sample against one boundary.
type boundaryDecision struct {
	Event entity.GeofenceEvent
	// Next is nil when the stored state must not change (replayed or stale sample).
	Next *entity.BoundaryState
	// ResolveID is set for CLEARED events with the notification to close.
	ResolveID *uuid.UUID
}

// evaluateBoundary compares a measurement with the prior state of the same boundary.
// It is a pure function: identical inputs always yield identical decisions.
func evaluateBoundary(
	prior *entity.BoundaryState,
	meas border.Measurement,
	observedAt time.Time,
	threshold float64,
	alert *openAlert,
) boundaryDecision {
	if prior != nil && !observedAt.After(prior.LastSampleAt) {
		return boundaryDecision{Event: entity.GeofenceEventNoChange}
	}

	dist := meas.DistanceMeters
	abs := math.Abs(dist)
	side := meas.Side()

	next := &entity.BoundaryState{
		BoundaryCode:   meas.BoundaryCode,
		Side:           side,
		DistanceMeters: dist,
		Zone:           entity.BoundaryZoneClear,
		LastSampleAt:   observedAt,
	}
	if prior != nil {
		next.ShipID = prior.ShipID
		next.Zone = prior.Zone
		next.OpenNotificationID = prior.OpenNotificationID
		next.Pending = prior.Pending
		if side == 0 {
			// a sample exactly on the line keeps the last known side
			next.Side = prior.Side
		}
	}

	liveAlert := alert != nil && alert.Open

	switch {
	case prior != nil && prior.Side != 0 && side != 0 && side != prior.Side:
		next.Zone = entity.BoundaryZoneCrossed

		return boundaryDecision{Event: entity.GeofenceEventCrossed, Next: next}

	case abs > 0 && abs <= threshold:
		if next.Zone != entity.BoundaryZoneCrossed {
			next.Zone = entity.BoundaryZoneNear
		}
		if liveAlert && (alert.NearWarning || alert.Crossed) {
			return boundaryDecision{Event: entity.GeofenceEventNoChange, Next: next}
		}

		return boundaryDecision{Event: entity.GeofenceEventNearWarning, Next: next}

	case abs > threshold && prior != nil && prior.Zone != entity.BoundaryZoneClear &&
		abs > math.Abs(prior.DistanceMeters):
		next.Zone = entity.BoundaryZoneClear
		next.OpenNotificationID = nil
		next.Pending = nil
		if liveAlert && alert.RepeatUntilResolved {
			id := alert.ID

			return boundaryDecision{Event: entity.GeofenceEventCleared, Next: next, ResolveID: &id}
		}

		return boundaryDecision{Event: entity.GeofenceEventNoChange, Next: next}
	}

	return boundaryDecision{Event: entity.GeofenceEventNoChange, Next: next}
}
