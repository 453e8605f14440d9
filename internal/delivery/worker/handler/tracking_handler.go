package handler

import (
	"log/slog"
	"net/http"

	"vesselwatch/internal/delivery/api/response"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	trackingActionStart = "start"
	trackingActionStop  = "stop"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	Tracking usecase.TrackingUsecase
	Logger   *slog.Logger
}

// TrackingHandler starts and stops per-ship position polling
type TrackingHandler struct {
	tracking usecase.TrackingUsecase
	logger   *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		tracking: params.Tracking,
		logger:   params.Logger,
	}
}

// TrackingRequest represents the request body of the tracking control endpoint
type TrackingRequest struct {
	Action string `json:"action" validate:"required,oneof=start stop"`
}

// TrackingStatus is the tracking state of one ship
type TrackingStatus struct {
	ShipID   uuid.UUID `json:"ship_id"`
	Tracking bool      `json:"tracking"`
}

// Control handles POST /api/v1/ships/:id/tracking
func (h *TrackingHandler) Control(c echo.Context) error {
	shipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ship ID")
	}

	var req TrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	switch req.Action {
	case trackingActionStart:
		if err := h.tracking.Start(c.Request().Context(), shipID); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, TrackingStatus{ShipID: shipID, Tracking: true})
	default:
		stopped := h.tracking.Stop(shipID)
		h.logger.Info("[Worker] Tracking stop requested",
			slog.String("ship_id", shipID.String()),
			slog.Bool("was_running", stopped),
		)

		return response.Success(c, http.StatusOK, TrackingStatus{ShipID: shipID, Tracking: false})
	}
}

// List handles GET /api/v1/ships/tracking
func (h *TrackingHandler) List(c echo.Context) error {
	running := h.tracking.Running()
	statuses := make([]TrackingStatus, 0, len(running))
	for _, id := range running {
		statuses = append(statuses, TrackingStatus{ShipID: id, Tracking: true})
	}

	return response.Success(c, http.StatusOK, statuses)
}
