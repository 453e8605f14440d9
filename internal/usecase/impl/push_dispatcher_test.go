package impl

import (
	"context"
	"fmt"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/domain/service"
	mockRepo "vesselwatch/internal/mocks/repository"
	mockSvc "vesselwatch/internal/mocks/service"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixture struct {
	dispatcher usecase.PushDispatcher
	shipRepo   *mockRepo.MockShipRepository
	userRepo   *mockRepo.MockUserRepository
	tokenRepo  *mockRepo.MockPushTokenRepository
	sender     *mockSvc.MockPushSender
	publisher  *mockSvc.MockEventPublisher
}

func createTestPushDispatcher(t *testing.T) *dispatcherFixture {
	fx := &dispatcherFixture{
		shipRepo:  mockRepo.NewMockShipRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		tokenRepo: mockRepo.NewMockPushTokenRepository(t),
		sender:    mockSvc.NewMockPushSender(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.dispatcher = NewPushDispatcher(newDiscardLogger(), fx.shipRepo, fx.userRepo, fx.tokenRepo, fx.sender, fx.publisher)

	return fx
}

// expectOwner wires ship -> owner -> tokens for a notification.
func (fx *dispatcherFixture) expectOwner(ctx context.Context, notification *entity.Notification, tokens ...string) uuid.UUID {
	ship := newTestShip()
	ship.ID = notification.ShipID
	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.userRepo.EXPECT().FindByID(ctx, *ship.OwnerUserID).Return(&entity.User{ID: *ship.OwnerUserID}, nil)

	records := make([]*entity.UserPushToken, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, &entity.UserPushToken{ID: uuid.New(), UserID: *ship.OwnerUserID, Token: token, IsActive: true})
	}
	fx.tokenRepo.EXPECT().FindActiveByUser(ctx, *ship.OwnerUserID).Return(records, nil)

	return *ship.OwnerUserID
}

func outcomes(result service.PushResult, tokens ...string) []*service.TokenOutcome {
	out := make([]*service.TokenOutcome, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, &service.TokenOutcome{Token: token, Result: result})
	}

	return out
}

func TestPushDispatcher_Dispatch_Sent(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	notification.Title = "Boundary crossed"
	notification.FormattedMessage = "Ocean Star crossed EEZ-NORTH"
	fx.expectOwner(ctx, notification, "token-1", "token-2")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().
		SendBatch(ctx, []string{"token-1", "token-2"}, mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Title == "Boundary crossed" && m.Data["notification_id"] == notification.ID.String()
		})).
		Return(outcomes(service.PushAccepted, "token-1", "token-2"), nil)

	result := fx.dispatcher.Dispatch(ctx, notification)

	require.True(t, result.Succeeded())
	assert.Equal(t, entity.NotificationStatusSent, result.Status)
	assert.Len(t, result.Attempts, 2)
	assert.Equal(t, 1, result.Attempts[0].AttemptNumber)
	assert.Empty(t, result.InvalidTokens)
}

func TestPushDispatcher_Dispatch_DeliveredWins(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	fx.expectOwner(ctx, notification, "token-1", "token-2")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).Return([]*service.TokenOutcome{
		{Token: "token-1", Result: service.PushAccepted},
		{Token: "token-2", Result: service.PushDelivered},
	}, nil)

	result := fx.dispatcher.Dispatch(ctx, notification)

	assert.Equal(t, entity.NotificationStatusDelivered, result.Status)
	assert.Nil(t, result.Err)
}

func TestPushDispatcher_Dispatch_NoTokens(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	fx.expectOwner(ctx, notification)

	result := fx.dispatcher.Dispatch(ctx, notification)

	require.NotNil(t, result.Err)
	assert.Equal(t, entity.FailureReasonNoDeviceFound, result.Err.Reason())
	assert.True(t, result.Err.Permanent())
}

func TestPushDispatcher_Dispatch_OwnerMissing(t *testing.T) {
	ctx := context.Background()

	t.Run("ship not found", func(t *testing.T) {
		fx := createTestPushDispatcher(t)
		notification := newSendingNotification(uuid.New())
		fx.shipRepo.EXPECT().FindByID(ctx, notification.ShipID).Return(nil, repository.ErrShipNotFound)

		result := fx.dispatcher.Dispatch(ctx, notification)

		assert.Equal(t, entity.FailureReasonUserNotFound, result.Err.Reason())
	})

	t.Run("ship without owner", func(t *testing.T) {
		fx := createTestPushDispatcher(t)
		notification := newSendingNotification(uuid.New())
		ship := newTestShip()
		ship.OwnerUserID = nil
		fx.shipRepo.EXPECT().FindByID(ctx, notification.ShipID).Return(ship, nil)

		result := fx.dispatcher.Dispatch(ctx, notification)

		assert.Equal(t, entity.FailureReasonUserNotFound, result.Err.Reason())
	})

	t.Run("owner deleted", func(t *testing.T) {
		fx := createTestPushDispatcher(t)
		notification := newSendingNotification(uuid.New())
		ship := newTestShip()
		fx.shipRepo.EXPECT().FindByID(ctx, notification.ShipID).Return(ship, nil)
		fx.userRepo.EXPECT().FindByID(ctx, *ship.OwnerUserID).Return(nil, repository.ErrUserNotFound)

		result := fx.dispatcher.Dispatch(ctx, notification)

		assert.Equal(t, entity.FailureReasonUserNotFound, result.Err.Reason())
	})

	t.Run("registry unreachable", func(t *testing.T) {
		fx := createTestPushDispatcher(t)
		notification := newSendingNotification(uuid.New())
		fx.shipRepo.EXPECT().FindByID(ctx, notification.ShipID).Return(nil, context.DeadlineExceeded)

		result := fx.dispatcher.Dispatch(ctx, notification)

		assert.Equal(t, entity.FailureReasonNetworkError, result.Err.Reason())
		assert.False(t, result.Err.Permanent())
	})
}

func TestPushDispatcher_Dispatch_AllTokensInvalid(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	userID := fx.expectOwner(ctx, notification, "dead-1", "dead-2")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
		Return(outcomes(service.PushRejectedPermanent, "dead-1", "dead-2"), nil)
	fx.publisher.EXPECT().
		PublishTokenInvalidated(ctx, mock.MatchedBy(func(e *service.TokenInvalidatedEvent) bool {
			return e.UserID == userID.String() && e.NotificationID == notification.ID.String()
		})).
		Return(nil).Times(2)

	result := fx.dispatcher.Dispatch(ctx, notification)

	assert.Equal(t, entity.FailureReasonNoDeviceFound, result.Err.Reason())
	assert.ElementsMatch(t, []string{"dead-1", "dead-2"}, result.InvalidTokens)
}

func TestPushDispatcher_Dispatch_PartialInvalidStillSucceeds(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	fx.expectOwner(ctx, notification, "live", "dead")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).Return([]*service.TokenOutcome{
		{Token: "live", Result: service.PushAccepted},
		{Token: "dead", Result: service.PushRejectedPermanent, Err: errors.New("unregistered")},
	}, nil)
	fx.publisher.EXPECT().PublishTokenInvalidated(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	result := fx.dispatcher.Dispatch(ctx, notification)

	assert.True(t, result.Succeeded())
	assert.Equal(t, []string{"dead"}, result.InvalidTokens)
	assert.Equal(t, "unregistered", result.Attempts[1].Error)
}

func TestPushDispatcher_Dispatch_ProviderUnreachable(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	notification.RetryNumber = 2
	fx.expectOwner(ctx, notification, "token-1")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	result := fx.dispatcher.Dispatch(ctx, notification)

	require.NotNil(t, result.Err)
	assert.Equal(t, entity.FailureReasonNetworkError, result.Err.Reason())
	require.Len(t, result.Attempts, 1)
	assert.Equal(t, 3, result.Attempts[0].AttemptNumber)
}

func TestPushDispatcher_Dispatch_TransientRejection(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	fx.expectOwner(ctx, notification, "token-1")

	fx.sender.EXPECT().MaxBatchSize().Return(500)
	fx.sender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
		Return(outcomes(service.PushRejectedTransient, "token-1"), nil)

	result := fx.dispatcher.Dispatch(ctx, notification)

	assert.ErrorIs(t, result.Err, domainerrors.ErrProvider)
}

func TestPushDispatcher_Dispatch_SplitsBatches(t *testing.T) {
	fx := createTestPushDispatcher(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())

	tokens := make([]string, 5)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}
	fx.expectOwner(ctx, notification, append(tokens, tokens[0])...)

	fx.sender.EXPECT().MaxBatchSize().Return(2)
	fx.sender.EXPECT().SendBatch(ctx, tokens[0:2], mock.Anything).Return(outcomes(service.PushAccepted, tokens[0:2]...), nil).Once()
	fx.sender.EXPECT().SendBatch(ctx, tokens[2:4], mock.Anything).Return(outcomes(service.PushAccepted, tokens[2:4]...), nil).Once()
	fx.sender.EXPECT().SendBatch(ctx, tokens[4:5], mock.Anything).Return(outcomes(service.PushAccepted, tokens[4:5]...), nil).Once()

	result := fx.dispatcher.Dispatch(ctx, notification)

	assert.True(t, result.Succeeded())
	assert.Len(t, result.Attempts, 5)
}
