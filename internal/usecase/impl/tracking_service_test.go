package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/errors"
	mockRepo "vesselwatch/internal/mocks/repository"
	mockSvc "vesselwatch/internal/mocks/service"
	mockUsecase "vesselwatch/internal/mocks/usecase"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackingFixture struct {
	tracking usecase.TrackingUsecase
	source   *mockSvc.MockPositionSource
	shipRepo *mockRepo.MockShipRepository
	geofence *mockUsecase.MockGeofenceUsecase
}

func createTestTrackingService(t *testing.T) *trackingFixture {
	fx := &trackingFixture{
		source:   mockSvc.NewMockPositionSource(t),
		shipRepo: mockRepo.NewMockShipRepository(t),
		geofence: mockUsecase.NewMockGeofenceUsecase(t),
	}
	fx.tracking = NewTrackingService(newDiscardLogger(), newTestConfig(), fx.source, fx.shipRepo, fx.geofence)
	t.Cleanup(fx.tracking.StopAll)

	return fx
}

func TestTrackingService_StartPollsAndEvaluates(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	ship := newTestShip()

	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.source.EXPECT().Fetch(mock.Anything, ship).
		RunAndReturn(func(context.Context, *entity.Ship) (*entity.PositionSample, error) {
			return &entity.PositionSample{Latitude: 25, Longitude: 121, ObservedAt: time.Now(), Source: "gps"}, nil
		})
	var evaluations atomic.Int32
	fx.geofence.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(s *entity.PositionSample) bool { return s.ShipID == ship.ID })).
		RunAndReturn(func(context.Context, *entity.PositionSample) (*entity.GeofenceResult, error) {
			evaluations.Add(1)

			return &entity.GeofenceResult{ShipID: ship.ID}, nil
		})

	require.NoError(t, fx.tracking.Start(ctx, ship.ID))
	require.NoError(t, fx.tracking.Start(ctx, ship.ID), "starting twice is a no-op")

	assert.Eventually(t, func() bool {
		return evaluations.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []uuid.UUID{ship.ID}, fx.tracking.Running())

	assert.True(t, fx.tracking.Stop(ship.ID))
	assert.False(t, fx.tracking.Stop(ship.ID))
	assert.Empty(t, fx.tracking.Running())
}

func TestTrackingService_StopsWhenShipDeregistered(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	ship := newTestShip()

	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.source.EXPECT().Fetch(mock.Anything, ship).
		Return(&entity.PositionSample{Latitude: 25, Longitude: 121, ObservedAt: time.Now()}, nil).Once()
	fx.geofence.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrShipInactive).Once()

	require.NoError(t, fx.tracking.Start(ctx, ship.ID))

	assert.Eventually(t, func() bool {
		return len(fx.tracking.Running()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestTrackingService_StopsOnPermanentFetchError(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	ship := newTestShip()

	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.source.EXPECT().Fetch(mock.Anything, ship).
		Return(nil, errors.Permanent(errors.New("tracker returned status 404"))).Once()

	require.NoError(t, fx.tracking.Start(ctx, ship.ID))

	assert.Eventually(t, func() bool {
		return len(fx.tracking.Running()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestTrackingService_FetchErrorsKeepPolling(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	ship := newTestShip()

	fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	var fetches atomic.Int32
	fx.source.EXPECT().Fetch(mock.Anything, ship).
		RunAndReturn(func(context.Context, *entity.Ship) (*entity.PositionSample, error) {
			fetches.Add(1)

			return nil, assert.AnError
		})

	require.NoError(t, fx.tracking.Start(ctx, ship.ID))

	assert.Eventually(t, func() bool {
		return fetches.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, fx.tracking.Running(), 1)
}

func TestTrackingService_StartRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("no position source", func(t *testing.T) {
		tracking := NewTrackingService(newDiscardLogger(), newTestConfig(), nil,
			mockRepo.NewMockShipRepository(t), mockUsecase.NewMockGeofenceUsecase(t))

		assert.ErrorIs(t, tracking.Start(ctx, uuid.New()), domainerrors.ErrTrackingUnavailable)
		_, err := tracking.StartAll(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrTrackingUnavailable)
	})

	t.Run("inactive ship", func(t *testing.T) {
		fx := createTestTrackingService(t)
		ship := newTestShip()
		ship.Status = entity.ShipStatusInactive
		fx.shipRepo.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)

		assert.ErrorIs(t, fx.tracking.Start(ctx, ship.ID), domainerrors.ErrShipInactive)
		assert.Empty(t, fx.tracking.Running())
	})
}

func TestTrackingService_StartAll(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	active := newTestShip()
	inactive := newTestShip()
	inactive.Status = entity.ShipStatusInactive

	fx.shipRepo.EXPECT().FindTracked(ctx).Return([]*entity.Ship{active, inactive}, nil)
	fx.source.EXPECT().Fetch(mock.Anything, active).Return(nil, assert.AnError).Maybe()

	started, err := fx.tracking.StartAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, started)
	assert.Equal(t, []uuid.UUID{active.ID}, fx.tracking.Running())

	fx.tracking.StopAll()
	assert.Empty(t, fx.tracking.Running())
}
