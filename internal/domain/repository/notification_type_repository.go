package repository

import (
	"context"
	"errors"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification type persistence.
var (
	ErrNotificationTypeNotFound  = errors.New("notification type not found")
	ErrDuplicateNotificationType = errors.New("notification type code already exists")
)

// NotificationTypeRepository defines the persistence operations for notification types.
type NotificationTypeRepository interface {
	Create(ctx context.Context, notificationType *entity.NotificationType) error
	Update(ctx context.Context, notificationType *entity.NotificationType) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NotificationType, error)
	FindByCode(ctx context.Context, code string) (*entity.NotificationType, error)
	List(ctx context.Context) ([]*entity.NotificationType, error)
}
