// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationExists is returned when a notification with the same id was already created.
	ErrNotificationExists = errors.New("notification already exists")
	// ErrStaleTransition is returned when a conditional update matched no row
	// because another worker already moved the notification.
	ErrStaleTransition = errors.New("notification changed concurrently")
)

// StatusTransition describes one conditional status update.
// The row is only updated while it still has status From and, when From is SENDING, ClaimToken.
type StatusTransition struct {
	ID          uuid.UUID
	From        entity.NotificationStatus
	ClaimToken  string
	To          entity.NotificationStatus
	Reason      *entity.FailureReason
	RetryNumber int
	NextRetry   *time.Time
	At          time.Time
}

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// List returns notifications matching the filter and the total count ignoring pagination.
	List(ctx context.Context, filter *entity.NotificationFilter) ([]*entity.Notification, int64, error)

	// FindDue returns notifications eligible for a delivery attempt at now,
	// ordered by priority descending then next_retry ascending.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error)

	// Claim moves a notification from expected to SENDING and records the claim.
	// It reports false when another worker got there first.
	Claim(ctx context.Context, id uuid.UUID, expected entity.NotificationStatus, claimToken string, claimedAt time.Time) (bool, error)

	// Transition applies a conditional status update and reports whether a row matched.
	Transition(ctx context.Context, transition *StatusTransition) (bool, error)

	// FindEarlierOpen returns the earliest open notification for the same ship and
	// boundary status code created since the given time, excluding the given id.
	// It returns ErrNotificationNotFound when there is none.
	FindEarlierOpen(ctx context.Context, target *entity.Notification, since time.Time) (*entity.Notification, error)

	// RecoverOrphans resets SENDING notifications claimed before the deadline back to QUEUED.
	RecoverOrphans(ctx context.Context, claimedBefore time.Time, now time.Time) (int64, error)

	// LinkNext sets the forward link of origin only if it is still unset.
	LinkNext(ctx context.Context, originID, nextID uuid.UUID) (bool, error)

	// Resolve deactivates an unresolved notification.
	Resolve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// MarkViewed sets the operator acknowledgement flag and nothing else.
	MarkViewed(ctx context.Context, id uuid.UUID, at time.Time) error

	// CreateAttempts persists the per-token audit rows of one delivery attempt.
	CreateAttempts(ctx context.Context, attempts []*entity.NotificationAttempt) error

	// FindAttempts lists the audit rows of a notification, oldest first.
	FindAttempts(ctx context.Context, notificationID uuid.UUID) ([]*entity.NotificationAttempt, error)
}
