package impl

import (
	"context"
	"testing"
	"time"

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

type stateMachineFixture struct {
	machine          usecase.NotificationStateMachine
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	notificationRepo *mockRepo.MockNotificationRepository
	shipRepo         *mockRepo.MockShipRepository
	typeRepo         *mockRepo.MockNotificationTypeRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestStateMachine(t *testing.T) *stateMachineFixture {
	fx := &stateMachineFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		shipRepo:         mockRepo.NewMockShipRepository(t),
		typeRepo:         mockRepo.NewMockNotificationTypeRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fx.machine = NewNotificationStateMachine(
		newDiscardLogger(),
		newTestConfig(),
		fx.txManager,
		fx.notificationRepo,
		fx.shipRepo,
		fx.typeRepo,
		fx.publisher,
	)

	return fx
}

// expectTransaction runs transaction callbacks against the fixture repositories.
func (fx *stateMachineFixture) expectTransaction() {
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewNotificationRepository().Return(fx.notificationRepo).Maybe()
	fx.factory.EXPECT().NewShipRepository().Return(fx.shipRepo).Maybe()
}

func (fx *stateMachineFixture) expectStatusEvent(from, to entity.NotificationStatus) {
	fx.publisher.EXPECT().
		PublishNotificationStatus(mock.Anything, mock.MatchedBy(func(e *service.NotificationStatusEvent) bool {
			return e.From == string(from) && e.To == string(to)
		})).
		Return(nil).Once()
}

func TestNotificationStateMachine_Raise_Success(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	ship := newTestShip()
	notificationType := newTestNotificationType("boundary_crossed")
	id := uuid.New()
	lat, lng, distance := 25.1, 121.5, 30.0

	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.ID == id && n.Status == entity.NotificationStatusQueued && n.RetryNumber == 0
	})).Return(nil)
	fx.shipRepo.EXPECT().UpdateLastNotification(ctx, ship.ID, id).Return(nil)

	notification, err := fx.machine.Raise(ctx, &usecase.RaiseRequest{
		ID:              id,
		Ship:            ship,
		Type:            notificationType,
		BoundaryCode:    "EEZ-NORTH",
		Event:           entity.GeofenceEventCrossed,
		BoundaryCrossed: true,
		Latitude:        &lat,
		Longitude:       &lng,
		DistanceMeters:  &distance,
		ObservedAt:      time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, id, notification.ID)
	assert.Equal(t, "EEZ-NORTH:CROSSED", notification.BoundaryStatusCode)
	assert.True(t, notification.BoundaryCrossed)
	assert.False(t, notification.BoundaryNearWarning)
	assert.True(t, notification.Active)
	assert.Equal(t, 3, notification.MaxRetry)
	assert.Equal(t, 5, notification.Priority)
	assert.Equal(t, "Boundary alert", notification.Title)
	assert.Equal(t, "Ocean Star crossed EEZ-NORTH", notification.FormattedMessage)
}

func TestNotificationStateMachine_Raise_DefaultMaxRetry(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	ship := newTestShip()
	notificationType := newTestNotificationType("boundary_near_warning")
	notificationType.MaxRetry = 0

	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.shipRepo.EXPECT().UpdateLastNotification(ctx, ship.ID, mock.Anything).Return(nil)

	notification, err := fx.machine.Raise(ctx, &usecase.RaiseRequest{
		Ship:                ship,
		Type:                notificationType,
		BoundaryCode:        "EEZ-NORTH",
		Event:               entity.GeofenceEventNearWarning,
		BoundaryNearWarning: true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, notification.ID)
	assert.Equal(t, 3, notification.MaxRetry)
	assert.Equal(t, "EEZ-NORTH:NEAR_WARNING", notification.BoundaryStatusCode)
}

func TestNotificationStateMachine_Raise_InvalidTemplate(t *testing.T) {
	fx := createTestStateMachine(t)
	notificationType := newTestNotificationType("boundary_crossed")
	notificationType.BodyTemplate = "{{.Missing}}"

	_, err := fx.machine.Raise(context.Background(), &usecase.RaiseRequest{
		Ship:  newTestShip(),
		Type:  notificationType,
		Event: entity.GeofenceEventCrossed,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTemplate))
}

func TestNotificationStateMachine_Raise_TransactionFailure(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	ship := newTestShip()

	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := fx.machine.Raise(ctx, &usecase.RaiseRequest{
		Ship:  ship,
		Type:  newTestNotificationType("boundary_crossed"),
		Event: entity.GeofenceEventCrossed,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestNotificationStateMachine_Raise_ExistingIDReturnsStoredNotification(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	ship := newTestShip()
	id := uuid.New()
	existing := &entity.Notification{ID: id, ShipID: ship.ID, Status: entity.NotificationStatusQueued}

	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrNotificationExists)
	fx.notificationRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)

	raised, err := fx.machine.Raise(ctx, &usecase.RaiseRequest{
		ID:    id,
		Ship:  ship,
		Type:  newTestNotificationType("boundary_crossed"),
		Event: entity.GeofenceEventCrossed,
	})

	require.NoError(t, err)
	assert.Same(t, existing, raised)
}

func TestNotificationStateMachine_RecordOutcome_TransientFailureRequeues(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	notification := newSendingNotification(uuid.New())

	fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
		return tr.From == entity.NotificationStatusSending &&
			tr.ClaimToken == "claim-1" &&
			tr.To == entity.NotificationStatusQueued &&
			tr.RetryNumber == 1 &&
			tr.NextRetry != nil && tr.NextRetry.Equal(now.Add(60*time.Second)) &&
			tr.Reason == nil
	})).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusQueued)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Err: domainerrors.ErrNetwork}, now)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusQueued, updated.Status)
	assert.Equal(t, 1, updated.RetryNumber)
	assert.Equal(t, now.Add(60*time.Second), *updated.NextRetry)
	assert.Nil(t, updated.Reason)
	assert.Empty(t, updated.ClaimToken)
	assert.Nil(t, updated.ClaimedAt)
	assert.Equal(t, now, *updated.LastAttemptAt)
}

func TestNotificationStateMachine_RecordOutcome_RetriesExhausted(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Now()
	notification := newSendingNotification(uuid.New())
	notification.RetryNumber = 3

	fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
		return tr.To == entity.NotificationStatusFailed && tr.RetryNumber == 4 &&
			tr.NextRetry == nil && tr.Reason != nil && *tr.Reason == entity.FailureReasonFirebaseError
	})).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusFailed)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Err: domainerrors.ErrProvider}, now)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, updated.Status)
	assert.Equal(t, 4, updated.RetryNumber)
	assert.True(t, updated.IsTerminal())
}

func TestNotificationStateMachine_RecordOutcome_RetryNumberStaysWithinBudget(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	notification := newSendingNotification(uuid.New())
	notification.MaxRetry = 3

	fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(true, nil)
	fx.publisher.EXPECT().PublishNotificationStatus(mock.Anything, mock.Anything).Return(nil)

	attempts := 0
	for {
		attempts++
		require.LessOrEqual(t, attempts, notification.MaxRetry+1, "retries must run out")

		notification.Status = entity.NotificationStatusSending
		notification.ClaimToken = "claim-1"

		updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Err: domainerrors.ErrNetwork}, now)
		require.NoError(t, err)

		if updated.Status == entity.NotificationStatusFailed {
			// only the exhausting failure may step past the budget
			assert.Equal(t, updated.MaxRetry+1, updated.RetryNumber)
			assert.Nil(t, updated.NextRetry)
			assert.True(t, updated.IsTerminal())

			break
		}

		assert.Equal(t, entity.NotificationStatusQueued, updated.Status)
		assert.LessOrEqual(t, updated.RetryNumber, updated.MaxRetry)
		assert.Equal(t, attempts, updated.RetryNumber)
		require.NotNil(t, updated.NextRetry)
		now = *updated.NextRetry
	}

	assert.Equal(t, notification.MaxRetry+1, attempts)
}

func TestNotificationStateMachine_RecordOutcome_PermanentFailure(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())
	notification.RetryNumber = 1

	fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
		return tr.To == entity.NotificationStatusFailed && tr.RetryNumber == 1 &&
			*tr.Reason == entity.FailureReasonNoDeviceFound
	})).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusFailed)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Err: domainerrors.ErrNoDeviceFound}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, entity.FailureReasonNoDeviceFound, *updated.Reason)
	assert.Nil(t, updated.NextRetry)
	assert.True(t, updated.IsTerminal())
}

func TestNotificationStateMachine_RecordOutcome_StaleClaim(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	notification := newSendingNotification(uuid.New())

	fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(false, nil)

	_, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Err: domainerrors.ErrNetwork}, time.Now())

	assert.ErrorIs(t, err, repository.ErrStaleTransition)
	assert.Equal(t, entity.NotificationStatusSending, notification.Status)
}

func TestNotificationStateMachine_RecordOutcome_RejectsUnclaimed(t *testing.T) {
	fx := createTestStateMachine(t)
	notification := newSendingNotification(uuid.New())
	notification.Status = entity.NotificationStatusQueued

	_, err := fx.machine.RecordOutcome(context.Background(), notification, &usecase.DispatchResult{Status: entity.NotificationStatusSent}, time.Now())

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestNotificationStateMachine_RecordOutcome_SentWithoutFollowUp(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Now()
	notificationType := newTestNotificationType("boundary_crossed")
	notification := newSendingNotification(notificationType.ID)
	attempts := []*entity.NotificationAttempt{{ID: uuid.New(), NotificationID: notification.ID, AttemptNumber: 1, Token: "t1", Outcome: "ACCEPTED"}}

	fx.notificationRepo.EXPECT().CreateAttempts(ctx, attempts).Return(nil)
	fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
		return tr.To == entity.NotificationStatusSent && tr.RetryNumber == 0
	})).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusSent)
	fx.typeRepo.EXPECT().FindByID(ctx, notificationType.ID).Return(notificationType, nil)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{
		Status:   entity.NotificationStatusSent,
		Attempts: attempts,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, updated.Status)
	assert.Equal(t, now, *updated.SentAt)
	assert.Nil(t, updated.DeliveredAt)
	assert.Nil(t, updated.NextNotificationID)
}

func TestNotificationStateMachine_RecordOutcome_ChainsNextAction(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Now()
	ship := newTestShip()
	followType := newTestNotificationType("boundary_follow_up")
	action := "FOLLOW_UP"
	originType := newTestNotificationType("boundary_crossed")
	originType.NextAction = &action
	originType.NextNotificationTypeID = &followType.ID
	notification := newSendingNotification(originType.ID)
	notification.ShipID = ship.ID

	fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusDelivered)
	fx.typeRepo.EXPECT().FindByID(ctx, originType.ID).Return(originType, nil)
	fx.typeRepo.EXPECT().FindByID(ctx, followType.ID).Return(followType, nil)
	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)

	var followUp *entity.Notification
	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { followUp = n }).
		Return(nil)
	fx.notificationRepo.EXPECT().LinkNext(ctx, notification.ID, mock.Anything).Return(true, nil)
	fx.shipRepo.EXPECT().UpdateLastNotification(ctx, ship.ID, mock.Anything).Return(nil)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Status: entity.NotificationStatusDelivered}, now)

	require.NoError(t, err)
	require.NotNil(t, followUp)
	assert.Equal(t, entity.NotificationStatusDelivered, updated.Status)
	assert.Equal(t, followUp.ID, *updated.NextNotificationID)
	assert.Equal(t, notification.ID, *followUp.PreviousNotificationID)
	assert.Equal(t, followType.ID, followUp.NotificationTypeID)
	assert.Equal(t, entity.NotificationStatusQueued, followUp.Status)
	assert.Equal(t, "EEZ-NORTH:CROSSED", followUp.BoundaryStatusCode)
	assert.Nil(t, followUp.NextRetry)
}

func TestNotificationStateMachine_RecordOutcome_DailyRepeat(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	now := time.Now()
	ship := newTestShip()
	notificationType := newTestNotificationType("boundary_crossed")
	notificationType.RepeatDaily = true
	notification := newSendingNotification(notificationType.ID)
	notification.ShipID = ship.ID
	notification.RepeatDaily = true

	fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusSent)
	fx.typeRepo.EXPECT().FindByID(ctx, notificationType.ID).Return(notificationType, nil)
	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)

	var followUp *entity.Notification
	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { followUp = n }).
		Return(nil)
	fx.notificationRepo.EXPECT().LinkNext(ctx, notification.ID, mock.Anything).Return(true, nil)
	fx.shipRepo.EXPECT().UpdateLastNotification(ctx, ship.ID, mock.Anything).Return(nil)

	_, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Status: entity.NotificationStatusSent}, now)

	require.NoError(t, err)
	require.NotNil(t, followUp)
	require.NotNil(t, followUp.NextRetry)
	assert.Equal(t, now.Add(24*time.Hour), *followUp.NextRetry)
	assert.Equal(t, notificationType.ID, followUp.NotificationTypeID)
}

func TestNotificationStateMachine_RecordOutcome_ChainLinkLostKeepsDelivery(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	ship := newTestShip()
	notificationType := newTestNotificationType("boundary_crossed")
	notificationType.RepeatDaily = true
	notification := newSendingNotification(notificationType.ID)
	notification.ShipID = ship.ID
	notification.RepeatDaily = true

	fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(true, nil)
	fx.expectStatusEvent(entity.NotificationStatusSending, entity.NotificationStatusSent)
	fx.typeRepo.EXPECT().FindByID(ctx, notificationType.ID).Return(notificationType, nil)
	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.expectTransaction()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().LinkNext(ctx, notification.ID, mock.Anything).Return(false, nil)

	updated, err := fx.machine.RecordOutcome(ctx, notification, &usecase.DispatchResult{Status: entity.NotificationStatusSent}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, updated.Status)
	assert.Nil(t, updated.NextNotificationID)
}

func TestNotificationStateMachine_ValidateChain_DetectsCycle(t *testing.T) {
	fx := createTestStateMachine(t)
	machine := fx.machine.(*notificationStateMachine)
	ctx := context.Background()

	rootID := uuid.New()
	originID := uuid.New()
	root := &entity.Notification{ID: rootID, NextNotificationID: &originID}
	origin := &entity.Notification{ID: originID, PreviousNotificationID: &rootID}

	fx.notificationRepo.EXPECT().FindByID(ctx, rootID).Return(root, nil).Maybe()

	assert.ErrorIs(t, machine.validateChain(ctx, origin, rootID), domainerrors.ErrChainCycle)
	assert.ErrorIs(t, machine.validateChain(ctx, origin, originID), domainerrors.ErrChainCycle)
	assert.NoError(t, machine.validateChain(ctx, origin, uuid.New()))
}

func TestNotificationStateMachine_ValidateChain_BrokenBackLink(t *testing.T) {
	fx := createTestStateMachine(t)
	machine := fx.machine.(*notificationStateMachine)
	ctx := context.Background()

	rootID := uuid.New()
	other := uuid.New()
	root := &entity.Notification{ID: rootID, NextNotificationID: &other}
	origin := &entity.Notification{ID: uuid.New(), PreviousNotificationID: &rootID}

	fx.notificationRepo.EXPECT().FindByID(ctx, rootID).Return(root, nil)

	assert.ErrorIs(t, machine.validateChain(ctx, origin, uuid.New()), domainerrors.ErrChainCycle)
}

func TestNotificationStateMachine_SuppressIfDuplicate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newQueued := func() *entity.Notification {
		return &entity.Notification{
			ID:                 uuid.New(),
			ShipID:             uuid.New(),
			Status:             entity.NotificationStatusQueued,
			BoundaryStatusCode: "EEZ-NORTH:CROSSED",
			MaxRetry:           3,
			Active:             true,
			CreatedAt:          now.Add(-time.Minute),
		}
	}

	t.Run("earlier open notification suppresses", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := newQueued()
		earlier := newQueued()

		fx.notificationRepo.EXPECT().
			FindEarlierOpen(ctx, notification, notification.CreatedAt.Add(-10*time.Minute)).
			Return(earlier, nil)
		fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
			return tr.From == entity.NotificationStatusQueued && tr.To == entity.NotificationStatusDuplicate
		})).Return(true, nil)
		fx.expectStatusEvent(entity.NotificationStatusQueued, entity.NotificationStatusDuplicate)

		suppressed, err := fx.machine.SuppressIfDuplicate(ctx, notification, now)

		require.NoError(t, err)
		assert.True(t, suppressed)
		assert.Equal(t, entity.NotificationStatusDuplicate, notification.Status)
	})

	t.Run("no earlier notification", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := newQueued()

		fx.notificationRepo.EXPECT().FindEarlierOpen(ctx, notification, mock.Anything).
			Return(nil, repository.ErrNotificationNotFound)

		suppressed, err := fx.machine.SuppressIfDuplicate(ctx, notification, now)

		require.NoError(t, err)
		assert.False(t, suppressed)
		assert.Equal(t, entity.NotificationStatusQueued, notification.Status)
	})

	t.Run("retried notification is never suppressed", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := newQueued()
		notification.RetryNumber = 1

		suppressed, err := fx.machine.SuppressIfDuplicate(ctx, notification, now)

		require.NoError(t, err)
		assert.False(t, suppressed)
	})

	t.Run("chained follow-up is never suppressed", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := newQueued()
		previous := uuid.New()
		notification.PreviousNotificationID = &previous

		suppressed, err := fx.machine.SuppressIfDuplicate(ctx, notification, now)

		require.NoError(t, err)
		assert.False(t, suppressed)
	})

	t.Run("lost race leaves notification alone", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := newQueued()

		fx.notificationRepo.EXPECT().FindEarlierOpen(ctx, notification, mock.Anything).Return(newQueued(), nil)
		fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(false, nil)

		suppressed, err := fx.machine.SuppressIfDuplicate(ctx, notification, now)

		require.NoError(t, err)
		assert.False(t, suppressed)
		assert.Equal(t, entity.NotificationStatusQueued, notification.Status)
	})
}

func TestNotificationStateMachine_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("queued notification is claimed", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusQueued, MaxRetry: 3}

		fx.notificationRepo.EXPECT().Claim(ctx, notification.ID, entity.NotificationStatusQueued, "token-a", now).Return(true, nil)

		ok, err := fx.machine.Claim(ctx, notification, "token-a", now)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, entity.NotificationStatusSending, notification.Status)
		assert.Equal(t, "token-a", notification.ClaimToken)
	})

	t.Run("claim lost to another worker", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusQueued, MaxRetry: 3}

		fx.notificationRepo.EXPECT().Claim(ctx, notification.ID, entity.NotificationStatusQueued, "token-b", now).Return(false, nil)

		ok, err := fx.machine.Claim(ctx, notification, "token-b", now)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, entity.NotificationStatusQueued, notification.Status)
	})

	t.Run("terminal notification cannot be claimed", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusDelivered}

		_, err := fx.machine.Claim(ctx, notification, "token-c", now)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestNotificationStateMachine_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("queued notification fails with unknown error", func(t *testing.T) {
		fx := createTestStateMachine(t)
		lastAttempt := time.Now().Add(-time.Hour)
		next := time.Now().Add(time.Minute)
		notification := &entity.Notification{
			ID:            uuid.New(),
			Status:        entity.NotificationStatusQueued,
			RetryNumber:   1,
			MaxRetry:      3,
			NextRetry:     &next,
			LastAttemptAt: &lastAttempt,
		}

		fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
		fx.notificationRepo.EXPECT().Transition(ctx, mock.MatchedBy(func(tr *repository.StatusTransition) bool {
			return tr.From == entity.NotificationStatusQueued && tr.To == entity.NotificationStatusFailed &&
				*tr.Reason == entity.FailureReasonUnknownError && tr.RetryNumber == 1
		})).Return(true, nil)
		fx.expectStatusEvent(entity.NotificationStatusQueued, entity.NotificationStatusFailed)

		cancelled, err := fx.machine.Cancel(ctx, notification.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.NotificationStatusFailed, cancelled.Status)
		assert.Equal(t, entity.FailureReasonUnknownError, *cancelled.Reason)
		assert.Nil(t, cancelled.NextRetry)
		assert.Equal(t, lastAttempt, *cancelled.LastAttemptAt)
		assert.True(t, cancelled.IsTerminal())
	})

	t.Run("terminal notification is rejected", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusSent}

		fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)

		_, err := fx.machine.Cancel(ctx, notification.ID)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationTerminal)
	})

	t.Run("concurrent change is a conflict", func(t *testing.T) {
		fx := createTestStateMachine(t)
		notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusQueued, MaxRetry: 3}

		fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
		fx.notificationRepo.EXPECT().Transition(ctx, mock.Anything).Return(false, nil)

		_, err := fx.machine.Cancel(ctx, notification.ID)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestNotificationStateMachine_Resolve(t *testing.T) {
	fx := createTestStateMachine(t)
	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), Status: entity.NotificationStatusSent, Active: true, RepeatDaily: true}

	fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	fx.notificationRepo.EXPECT().Resolve(ctx, notification.ID, mock.Anything).Return(true, nil)

	resolved, err := fx.machine.Resolve(ctx, notification.ID)

	require.NoError(t, err)
	assert.False(t, resolved.Active)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, entity.NotificationStatusSent, resolved.Status)

	again, err := fx.machine.Resolve(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, resolved.ResolvedAt, again.ResolvedAt)
}

func TestBoundaryFromStatusCode(t *testing.T) {
	assert.Equal(t, "EEZ-NORTH", boundaryFromStatusCode("EEZ-NORTH:CROSSED"))
	assert.Equal(t, "A:B", boundaryFromStatusCode("A:B:NEAR_WARNING"))
	assert.Equal(t, "plain", boundaryFromStatusCode("plain"))
}
