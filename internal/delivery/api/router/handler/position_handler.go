package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vesselwatch/internal/delivery/api/response"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	PositionUC usecase.PositionUsecase
	Logger     *slog.Logger
}

// PositionHandler accepts position samples from trackers and gateways
type PositionHandler struct {
	positionUC usecase.PositionUsecase
	logger     *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		positionUC: params.PositionUC,
		logger:     params.Logger,
	}
}

// ReportPositionRequest represents one position sample
type ReportPositionRequest struct {
	ShipID     string    `json:"shipId" validate:"required,uuid"`
	Latitude   *float64  `json:"lat" validate:"required,min=-90,max=90"`
	Longitude  *float64  `json:"lng" validate:"required,min=-180,max=180"`
	ObservedAt time.Time `json:"observedAt" validate:"required"`
	Source     string    `json:"source" validate:"omitempty,max=64"`
}

// ReportPosition handles POST /api/v1/positions
func (h *PositionHandler) ReportPosition(c echo.Context) error {
	var req ReportPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sample := &entity.PositionSample{
		ShipID:     uuid.MustParse(req.ShipID),
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		ObservedAt: req.ObservedAt.UTC(),
		Source:     req.Source,
	}
	if sample.Source == "" {
		sample.Source = "api"
	}

	if err := h.positionUC.Report(c.Request().Context(), sample); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "accepted"})
}
