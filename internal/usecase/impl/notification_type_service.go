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

type notificationTypeService struct {
	typeRepo repository.NotificationTypeRepository
}

// NewNotificationTypeService creates the notification type administration service
func NewNotificationTypeService(typeRepo repository.NotificationTypeRepository) usecase.NotificationTypeUsecase {
	return &notificationTypeService{typeRepo: typeRepo}
}

func (s *notificationTypeService) Create(ctx context.Context, notificationType *entity.NotificationType) (*entity.NotificationType, error) {
	notificationType.ID = uuid.New()
	if err := s.validate(ctx, notificationType); err != nil {
		return nil, err
	}

	now := time.Now()
	notificationType.CreatedAt = now
	notificationType.UpdatedAt = now

	err := s.typeRepo.Create(ctx, notificationType)
	if errors.Is(err, repository.ErrDuplicateNotificationType) {
		return nil, domainerrors.ErrNotificationTypeCodeExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notification type")
	}

	return notificationType, nil
}

func (s *notificationTypeService) Update(ctx context.Context, notificationType *entity.NotificationType) (*entity.NotificationType, error) {
	existing, err := s.Get(ctx, notificationType.ID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, notificationType); err != nil {
		return nil, err
	}

	notificationType.CreatedAt = existing.CreatedAt
	notificationType.UpdatedAt = time.Now()

	err = s.typeRepo.Update(ctx, notificationType)
	if errors.Is(err, repository.ErrDuplicateNotificationType) {
		return nil, domainerrors.ErrNotificationTypeCodeExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update notification type")
	}

	return notificationType, nil
}

func (s *notificationTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.typeRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotificationTypeNotFound) {
		return domainerrors.ErrNotificationTypeNotFound
	}

	return err
}

func (s *notificationTypeService) Get(ctx context.Context, id uuid.UUID) (*entity.NotificationType, error) {
	notificationType, err := s.typeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotificationTypeNotFound) {
		return nil, domainerrors.ErrNotificationTypeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification type")
	}

	return notificationType, nil
}

func (s *notificationTypeService) List(ctx context.Context) ([]*entity.NotificationType, error) {
	return s.typeRepo.List(ctx)
}

// validate checks templates and that a follow-up type exists and differs from the type itself
func (s *notificationTypeService) validate(ctx context.Context, notificationType *entity.NotificationType) error {
	if err := validateTemplates(notificationType); err != nil {
		return domainerrors.ErrInvalidTemplate.WithDetails(err.Error())
	}

	if notificationType.NextNotificationTypeID == nil {
		return nil
	}
	if *notificationType.NextNotificationTypeID == notificationType.ID {
		return domainerrors.ErrChainCycle.WithDetails("a notification type cannot follow itself")
	}

	if _, err := s.Get(ctx, *notificationType.NextNotificationTypeID); err != nil {
		return err
	}

	return nil
}
