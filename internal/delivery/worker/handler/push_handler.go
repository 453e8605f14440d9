package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/infra/pubsub"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks an OIDC token against an audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying position samples
type PushHandler struct {
	audience string
	validate TokenValidator
	logger   *slog.Logger
	geofence usecase.GeofenceUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Geofence usecase.GeofenceUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience: audience,
		validate: idtoken.Validate,
		logger:   params.Logger,
		geofence: params.Geofence,
	}
}

// HandlePush handles POST /push.
// 2xx acks the message, 503 asks Pub/Sub to redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := pushMsg.Message.Attributes[pubsub.AttrEventType]
	if eventType != "" && eventType != service.EventTypePositionReported {
		h.logger.Debug("[Worker] Ignoring event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PositionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse position event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("ship_id", event.ShipID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	shipID, err := uuid.Parse(event.ShipID)
	if err != nil {
		// redelivery cannot fix a malformed id
		reqLogger.Warn("[Worker] Dropping position with invalid ship id")

		return c.NoContent(http.StatusOK)
	}

	sample := &entity.PositionSample{
		ShipID:     shipID,
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		ObservedAt: event.ObservedAt,
		Source:     event.Source,
	}

	result, err := h.geofence.Evaluate(ctx, sample)

	return h.respond(c, reqLogger, result, err)
}

func (h *PushHandler) respond(c echo.Context, logger *slog.Logger, result *entity.GeofenceResult, err error) error {
	switch {
	case err == nil:
		logger.Debug("[Worker] Position evaluated",
			slog.String("event", string(result.Event)),
			slog.Bool("skipped", result.Skipped),
		)

		return c.NoContent(http.StatusOK)

	case errors.Is(err, domainerrors.ErrInvalidPosition),
		errors.Is(err, domainerrors.ErrShipNotFound),
		errors.Is(err, domainerrors.ErrShipInactive):
		logger.Warn("[Worker] Dropping position", slog.Any("error", err))

		return c.NoContent(http.StatusOK)

	case errors.Is(err, domainerrors.ErrNotificationCreationFailed):
		// the stored state keeps the pending raise, a redelivery creates the notification
		logger.Error("[Worker] Notification not created, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)

	case result != nil:
		// boundary state is already committed, a replay would evaluate to NoChange
		logger.Error("[Worker] Position evaluated with side effect failures", slog.Any("error", err))

		return c.NoContent(http.StatusOK)

	default:
		logger.Error("[Worker] Failed to evaluate position, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// extractRequestID picks the request id from message attributes, then the payload, then the
// inbound request, and generates one as a last resort
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.PositionEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
