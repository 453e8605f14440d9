// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the delivery state of a notification.
type NotificationStatus string

const (
	NotificationStatusQueued    NotificationStatus = "QUEUED"
	NotificationStatusSending   NotificationStatus = "SENDING"
	NotificationStatusSent      NotificationStatus = "SENT"
	NotificationStatusDelivered NotificationStatus = "DELIVERED"
	NotificationStatusFailed    NotificationStatus = "FAILED"
	NotificationStatusDuplicate NotificationStatus = "DUPLICATE"
)

// IsValid reports whether s is one of the known statuses.
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusQueued, NotificationStatusSending, NotificationStatusSent,
		NotificationStatusDelivered, NotificationStatusFailed, NotificationStatusDuplicate:
		return true
	default:
		return false
	}
}

// FailureReason explains why a notification ended up FAILED.
type FailureReason string

const (
	FailureReasonUserNotFound  FailureReason = "USER_NOT_FOUND"
	FailureReasonNoDeviceFound FailureReason = "NO_DEVICE_FOUND"
	FailureReasonFirebaseError FailureReason = "FIREBASE_ERROR"
	FailureReasonNetworkError  FailureReason = "NETWORK_ERROR"
	FailureReasonUnknownError  FailureReason = "UNKNOWN_ERROR"
)

// IsPermanent reports whether retrying a notification that failed for this reason is pointless.
func (r FailureReason) IsPermanent() bool {
	return r == FailureReasonUserNotFound || r == FailureReasonNoDeviceFound
}

// Notification is a single alert about a ship, driven through push delivery.
type Notification struct {
	ID                     uuid.UUID          `json:"id"`                        // The Global Unique Identifier (GUID) for the notification.
	ShipID                 uuid.UUID          `json:"ship_id"`                   // The ship this notification is about.
	NotificationTypeID     uuid.UUID          `json:"notification_type_id"`      // The class of notification.
	Status                 NotificationStatus `json:"status"`                    // Delivery status.
	Reason                 *FailureReason     `json:"reason,omitempty"`          // Set only when Status is FAILED.
	RetryNumber            int                `json:"retry_number"`              // Failed attempts so far.
	MaxRetry               int                `json:"max_retry"`                 // Retry budget.
	NextRetry              *time.Time         `json:"next_retry,omitempty"`      // Earliest time of the next attempt.
	BoundaryCrossed        bool               `json:"boundary_crossed"`          // Raised by a crossing event.
	BoundaryNearWarning    bool               `json:"boundary_near_warning"`     // Raised by a near-warning event.
	BoundaryStatusCode     string             `json:"boundary_status_code"`      // Which border rule fired, e.g. "EEZ-NORTH:CROSSED".
	Active                 bool               `json:"active"`                    // False once resolved or cancelled.
	RepeatDaily            bool               `json:"repeat_daily"`              // Re-alert every day until resolved.
	RepeatUntilResolved    bool               `json:"repeat_until_resolved"`     // Stays open until the condition clears.
	ResolvedAt             *time.Time         `json:"resolved_at,omitempty"`     // When the condition was resolved.
	PreviousNotificationID *uuid.UUID         `json:"previous_notification_id"`  // Ancestor in the chain, if any.
	NextNotificationID     *uuid.UUID         `json:"next_notification_id"`      // Follow-up in the chain, if any.
	NextNotificationTypeID *uuid.UUID         `json:"next_notification_type_id"` // Type of the follow-up to spawn.
	Priority               int                `json:"priority"`                  // Higher dispatches first.
	IsViewed               bool               `json:"is_viewed"`                 // Operator acknowledgement.
	ViewedAt               *time.Time         `json:"viewed_at,omitempty"`       // When the operator acknowledged it.
	Title                  string             `json:"title"`                     // Rendered push title.
	FormattedMessage       string             `json:"formatted_message"`         // Rendered push body.
	Latitude               *float64           `json:"latitude,omitempty"`        // Position that triggered the event.
	Longitude              *float64           `json:"longitude,omitempty"`       // Position that triggered the event.
	DistanceMeters         *float64           `json:"distance_meters,omitempty"` // Signed distance to the boundary at trigger time.
	ClaimToken             string             `json:"-"`                         // Identifies the worker holding the SENDING claim.
	ClaimedAt              *time.Time         `json:"claimed_at,omitempty"`      // When the current claim was taken.
	LastAttemptAt          *time.Time         `json:"last_attempt_at,omitempty"` // When the last delivery attempt finished.
	SentAt                 *time.Time         `json:"sent_at,omitempty"`         // When the provider accepted it.
	DeliveredAt            *time.Time         `json:"delivered_at,omitempty"`    // When the provider confirmed delivery.
	CreatedAt              time.Time          `json:"created_at"`                // Timestamp of when this record was created.
	UpdatedAt              time.Time          `json:"updated_at"`                // Timestamp of the last modification.
}

// IsTerminal reports whether no further delivery mutation may happen.
// FAILED is terminal once no retry is scheduled.
func (n *Notification) IsTerminal() bool {
	switch n.Status {
	case NotificationStatusSent, NotificationStatusDelivered, NotificationStatusDuplicate:
		return true
	case NotificationStatusFailed:
		return n.NextRetry == nil || n.RetryNumber > n.MaxRetry
	default:
		return false
	}
}

// IsOpen reports whether the notification still represents a live alert.
func (n *Notification) IsOpen() bool {
	return n.Active && n.ResolvedAt == nil && n.Status != NotificationStatusDuplicate &&
		!(n.Status == NotificationStatusFailed && n.IsTerminal())
}

// HasBeenAttempted reports whether a SENDING attempt has already happened.
func (n *Notification) HasBeenAttempted() bool {
	return n.LastAttemptAt != nil || n.ClaimedAt != nil || n.RetryNumber > 0
}

// NotificationAttempt records the outcome of one delivery attempt to one device token.
type NotificationAttempt struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	AttemptNumber  int       `json:"attempt_number"`
	Token          string    `json:"token"`
	Outcome        string    `json:"outcome"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	ShipID              *uuid.UUID
	Statuses            []NotificationStatus
	BoundaryCrossed     *bool
	BoundaryNearWarning *bool
	From                *time.Time
	To                  *time.Time
	Limit               int
	Offset              int
}
