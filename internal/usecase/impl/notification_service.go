package impl

import (
	"context"
	"time"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	stateMachine     usecase.NotificationStateMachine
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	stateMachine usecase.NotificationStateMachine,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		stateMachine:     stateMachine,
	}
}

// ListNotifications filters notifications with pagination
func (s *notificationService) ListNotifications(ctx context.Context, filter *entity.NotificationFilter) ([]*entity.Notification, int64, error) {
	if filter == nil {
		filter = &entity.NotificationFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
		}
	}

	notifications, total, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, total, nil
}

func (s *notificationService) find(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification")
	}

	return notification, nil
}

// GetNotification returns one notification with its attempts
func (s *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*usecase.NotificationDetail, error) {
	notification, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	attempts, err := s.notificationRepo.FindAttempts(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification attempts")
	}

	return &usecase.NotificationDetail{Notification: notification, Attempts: attempts}, nil
}

// GetChain follows forward links from a notification
func (s *notificationService) GetChain(ctx context.Context, id uuid.UUID) ([]*entity.Notification, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	chain := []*entity.Notification{current}
	seen := map[uuid.UUID]struct{}{current.ID: {}}
	for current.NextNotificationID != nil {
		if len(chain) >= maxChainDepth {
			return nil, errors.Wrap(domainerrors.ErrChainCycle, "chain too long")
		}
		if _, ok := seen[*current.NextNotificationID]; ok {
			return nil, domainerrors.ErrChainCycle
		}

		next, err := s.find(ctx, *current.NextNotificationID)
		if err != nil {
			return nil, err
		}
		seen[next.ID] = struct{}{}
		chain = append(chain, next)
		current = next
	}

	return chain, nil
}

// MarkViewed sets the acknowledgement flag
func (s *notificationService) MarkViewed(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.IsViewed {
		return notification, nil
	}

	now := time.Now()
	if err := s.notificationRepo.MarkViewed(ctx, id, now); err != nil {
		return nil, errors.Wrap(err, "failed to mark notification viewed")
	}
	notification.IsViewed = true
	notification.ViewedAt = &now

	return notification, nil
}

// Cancel stops a pending notification
func (s *notificationService) Cancel(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.stateMachine.Cancel(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}

	return notification, err
}

// Resolve closes a recurring notification
func (s *notificationService) Resolve(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.stateMachine.Resolve(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}

	return notification, err
}
