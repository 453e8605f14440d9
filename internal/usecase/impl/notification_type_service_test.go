package impl

import (
	"context"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	mockRepo "vesselwatch/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationTypeService_Create(t *testing.T) {
	typeRepo := mockRepo.NewMockNotificationTypeRepository(t)
	service := NewNotificationTypeService(typeRepo)
	ctx := context.Background()
	followUp := newTestNotificationType("follow_up")
	notificationType := newTestNotificationType("boundary_crossed")
	notificationType.NextNotificationTypeID = &followUp.ID

	typeRepo.EXPECT().FindByID(ctx, followUp.ID).Return(followUp, nil)
	typeRepo.EXPECT().Create(ctx, notificationType).Return(nil)

	created, err := service.Create(ctx, notificationType)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestNotificationTypeService_Create_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("broken template", func(t *testing.T) {
		service := NewNotificationTypeService(mockRepo.NewMockNotificationTypeRepository(t))
		notificationType := newTestNotificationType("bad")
		notificationType.TitleTemplate = "{{.TypeName"

		_, err := service.Create(ctx, notificationType)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTemplate)
	})

	t.Run("unknown follow-up type", func(t *testing.T) {
		typeRepo := mockRepo.NewMockNotificationTypeRepository(t)
		service := NewNotificationTypeService(typeRepo)
		missing := uuid.New()
		notificationType := newTestNotificationType("chained")
		notificationType.NextNotificationTypeID = &missing

		typeRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrNotificationTypeNotFound)

		_, err := service.Create(ctx, notificationType)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationTypeNotFound)
	})

	t.Run("duplicate code", func(t *testing.T) {
		typeRepo := mockRepo.NewMockNotificationTypeRepository(t)
		service := NewNotificationTypeService(typeRepo)

		typeRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateNotificationType)

		_, err := service.Create(ctx, newTestNotificationType("boundary_crossed"))

		assert.ErrorIs(t, err, domainerrors.ErrNotificationTypeCodeExists)
	})
}

func TestNotificationTypeService_Update_SelfReference(t *testing.T) {
	typeRepo := mockRepo.NewMockNotificationTypeRepository(t)
	service := NewNotificationTypeService(typeRepo)
	ctx := context.Background()
	notificationType := newTestNotificationType("loop")
	notificationType.NextNotificationTypeID = &notificationType.ID

	typeRepo.EXPECT().FindByID(ctx, notificationType.ID).Return(&entity.NotificationType{ID: notificationType.ID}, nil)

	_, err := service.Update(ctx, notificationType)

	assert.ErrorIs(t, err, domainerrors.ErrChainCycle)
}
