package usecase

import (
	"context"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationTypeUsecase defines the administrative operations on notification types
type NotificationTypeUsecase interface {
	Create(ctx context.Context, notificationType *entity.NotificationType) (*entity.NotificationType, error)
	Update(ctx context.Context, notificationType *entity.NotificationType) (*entity.NotificationType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.NotificationType, error)
	List(ctx context.Context) ([]*entity.NotificationType, error)
}
