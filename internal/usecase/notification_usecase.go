package usecase

import (
	"context"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationDetail is a notification with its delivery audit trail.
type NotificationDetail struct {
	*entity.Notification
	Attempts []*entity.NotificationAttempt `json:"attempts"`
}

// NotificationUsecase defines the operator-facing notification operations
type NotificationUsecase interface {
	// ListNotifications filters notifications and returns the total match count
	ListNotifications(ctx context.Context, filter *entity.NotificationFilter) ([]*entity.Notification, int64, error)

	// GetNotification returns one notification with its attempts
	GetNotification(ctx context.Context, id uuid.UUID) (*NotificationDetail, error)

	// GetChain returns the notification and every follow-up reachable through forward links
	GetChain(ctx context.Context, id uuid.UUID) ([]*entity.Notification, error)

	// MarkViewed records the operator acknowledgement
	MarkViewed(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// Cancel stops a pending notification
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// Resolve closes a recurring notification
	Resolve(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
}
