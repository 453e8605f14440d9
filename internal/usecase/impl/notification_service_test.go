package impl

import (
	"context"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	mockRepo "vesselwatch/internal/mocks/repository"
	mockUsecase "vesselwatch/internal/mocks/usecase"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockUsecase.MockNotificationStateMachine,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	stateMachine := mockUsecase.NewMockNotificationStateMachine(t)

	return NewNotificationService(notificationRepo, stateMachine), notificationRepo, stateMachine
}

func TestNotificationService_ListNotifications_Defaults(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f *entity.NotificationFilter) bool { return f.Limit == 50 && f.Offset == 0 })).
		Return([]*entity.Notification{{ID: uuid.New()}}, 1, nil)

	notifications, total, err := service.ListNotifications(ctx, nil)

	require.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, int64(1), total)
}

func TestNotificationService_ListNotifications_ClampsLimit(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	shipID := uuid.New()

	notificationRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f *entity.NotificationFilter) bool { return f.Limit == 500 && *f.ShipID == shipID })).
		Return(nil, 0, nil)

	_, _, err := service.ListNotifications(ctx, &entity.NotificationFilter{ShipID: &shipID, Limit: 10000, Offset: -3})

	require.NoError(t, err)
}

func TestNotificationService_ListNotifications_UnknownStatus(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, _, err := service.ListNotifications(context.Background(), &entity.NotificationFilter{
		Statuses: []entity.NotificationStatus{"PENDING"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_GetNotification(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusSent}
	attempts := []*entity.NotificationAttempt{{ID: uuid.New(), NotificationID: notification.ID, AttemptNumber: 1}}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().FindAttempts(ctx, notification.ID).Return(attempts, nil)

	detail, err := service.GetNotification(ctx, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, notification, detail.Notification)
	assert.Equal(t, attempts, detail.Attempts)
}

func TestNotificationService_GetNotification_NotFound(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

	_, err := service.GetNotification(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_GetChain(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	firstID, secondID, thirdID := uuid.New(), uuid.New(), uuid.New()
	first := &entity.Notification{ID: firstID, NextNotificationID: &secondID}
	second := &entity.Notification{ID: secondID, PreviousNotificationID: &firstID, NextNotificationID: &thirdID}
	third := &entity.Notification{ID: thirdID, PreviousNotificationID: &secondID}

	notificationRepo.EXPECT().FindByID(ctx, firstID).Return(first, nil)
	notificationRepo.EXPECT().FindByID(ctx, secondID).Return(second, nil)
	notificationRepo.EXPECT().FindByID(ctx, thirdID).Return(third, nil)

	chain, err := service.GetChain(ctx, firstID)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Notification{first, second, third}, chain)
}

func TestNotificationService_GetChain_Cycle(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	firstID, secondID := uuid.New(), uuid.New()
	notificationRepo.EXPECT().FindByID(ctx, firstID).Return(&entity.Notification{ID: firstID, NextNotificationID: &secondID}, nil)
	notificationRepo.EXPECT().FindByID(ctx, secondID).Return(&entity.Notification{ID: secondID, NextNotificationID: &firstID}, nil)

	_, err := service.GetChain(ctx, firstID)

	assert.ErrorIs(t, err, domainerrors.ErrChainCycle)
}

func TestNotificationService_MarkViewed(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusQueued}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkViewed(ctx, notification.ID, mock.Anything).Return(nil).Once()

	viewed, err := service.MarkViewed(ctx, notification.ID)

	require.NoError(t, err)
	assert.True(t, viewed.IsViewed)
	assert.NotNil(t, viewed.ViewedAt)
	assert.Equal(t, entity.NotificationStatusQueued, viewed.Status, "viewing never changes delivery status")

	_, err = service.MarkViewed(ctx, notification.ID)
	require.NoError(t, err)
}

func TestNotificationService_CancelAndResolve(t *testing.T) {
	service, _, stateMachine := createTestNotificationService(t)
	ctx := context.Background()
	missing := uuid.New()
	cancelled := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusFailed}

	stateMachine.EXPECT().Cancel(ctx, cancelled.ID).Return(cancelled, nil)
	stateMachine.EXPECT().Cancel(ctx, missing).Return(nil, repository.ErrNotificationNotFound)
	stateMachine.EXPECT().Resolve(ctx, missing).Return(nil, repository.ErrNotificationNotFound)

	got, err := service.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, cancelled, got)

	_, err = service.Cancel(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	_, err = service.Resolve(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
