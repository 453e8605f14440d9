package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/service"
	mockSvc "vesselwatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPositionService_Report(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	positions := NewPositionService(newDiscardLogger(), publisher)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	sample := &entity.PositionSample{ShipID: uuid.New(), Latitude: 25.01, Longitude: 121.4, ObservedAt: time.Now(), Source: "api"}

	publisher.EXPECT().PublishPosition(ctx, mock.MatchedBy(func(e *service.PositionEvent) bool {
		return e.ShipID == sample.ShipID.String() && e.RequestID == "req-42" && e.Latitude == 25.01
	})).Return(nil)

	require.NoError(t, positions.Report(ctx, sample))
}

func TestPositionService_Report_InvalidSample(t *testing.T) {
	positions := NewPositionService(newDiscardLogger(), mockSvc.NewMockEventPublisher(t))

	err := positions.Report(context.Background(), &entity.PositionSample{ShipID: uuid.New(), Latitude: 25, Longitude: 200, ObservedAt: time.Now()})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPosition)
}
