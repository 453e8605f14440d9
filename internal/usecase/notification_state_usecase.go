package usecase

import (
	"context"
	"time"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"

	"github.com/google/uuid"
)

// RaiseRequest carries an event that should become a notification.
type RaiseRequest struct {
	// ID is the id to give the notification. A zero value generates one.
	ID                  uuid.UUID
	Ship                *entity.Ship
	Type                *entity.NotificationType
	BoundaryCode        string
	Event               entity.GeofenceEvent
	BoundaryCrossed     bool
	BoundaryNearWarning bool
	Latitude            *float64
	Longitude           *float64
	DistanceMeters      *float64
	ObservedAt          time.Time
}

// DispatchResult is what one delivery attempt produced.
// Err is nil when Status is SENT or DELIVERED.
type DispatchResult struct {
	Status        entity.NotificationStatus
	Err           *domainerrors.DeliveryError
	Attempts      []*entity.NotificationAttempt
	InvalidTokens []string
}

// Succeeded reports whether the provider accepted the notification.
func (r *DispatchResult) Succeeded() bool {
	return r != nil && r.Err == nil &&
		(r.Status == entity.NotificationStatusSent || r.Status == entity.NotificationStatusDelivered)
}

// NotificationStateMachine owns every persisted status transition of a notification.
type NotificationStateMachine interface {
	// Raise creates a QUEUED notification for an event.
	Raise(ctx context.Context, req *RaiseRequest) (*entity.Notification, error)

	// SuppressIfDuplicate marks a QUEUED notification DUPLICATE when an earlier open
	// notification for the same ship and boundary status code exists within the coalescing window.
	SuppressIfDuplicate(ctx context.Context, notification *entity.Notification, now time.Time) (bool, error)

	// Claim moves a due notification to SENDING for exactly one worker.
	Claim(ctx context.Context, notification *entity.Notification, claimToken string, now time.Time) (bool, error)

	// RecordOutcome applies the result of a delivery attempt to a claimed notification
	// and spawns follow-ups on success.
	RecordOutcome(ctx context.Context, notification *entity.Notification, result *DispatchResult, now time.Time) (*entity.Notification, error)

	// Cancel fails a non-terminal notification with UNKNOWN_ERROR.
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// Resolve deactivates a notification so it no longer recurs.
	Resolve(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
}
