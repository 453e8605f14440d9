package impl

import (
	"context"
	"log/slog"

	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"
)

type positionService struct {
	logger    *slog.Logger
	publisher service.EventPublisher
}

// NewPositionService creates the API-side position intake
func NewPositionService(logger *slog.Logger, publisher service.EventPublisher) usecase.PositionUsecase {
	return &positionService{logger: logger, publisher: publisher}
}

// Report validates a sample and publishes it for the engine
func (s *positionService) Report(ctx context.Context, sample *entity.PositionSample) error {
	if !sample.IsValid() {
		return domainerrors.ErrInvalidPosition
	}

	event := &service.PositionEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		ShipID:     sample.ShipID.String(),
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		ObservedAt: sample.ObservedAt,
		Source:     sample.Source,
	}

	if err := s.publisher.PublishPosition(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish position")
	}

	deliverycontext.LoggerFrom(ctx, s.logger).Debug("Position published",
		slog.String("ship_id", event.ShipID),
		slog.String("source", event.Source),
	)

	return nil
}
