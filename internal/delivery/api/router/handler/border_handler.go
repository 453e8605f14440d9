package handler

import (
	"log/slog"
	"net/http"

	"vesselwatch/internal/delivery/api/response"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BorderHandlerParams holds dependencies for BorderHandler, injected by Fx.
type BorderHandlerParams struct {
	fx.In

	BorderUC usecase.BorderUsecase
	Logger   *slog.Logger
}

// BorderHandler serves the border point administration endpoints
type BorderHandler struct {
	borderUC usecase.BorderUsecase
	logger   *slog.Logger
}

// NewBorderHandler is the constructor for BorderHandler
func NewBorderHandler(params BorderHandlerParams) *BorderHandler {
	return &BorderHandler{
		borderUC: params.BorderUC,
		logger:   params.Logger,
	}
}

// BorderPointRequest represents the request body for creating or replacing a border point
type BorderPointRequest struct {
	BoundaryCode string   `json:"boundary_code" validate:"required,max=64"`
	Sequence     *int     `json:"sequence" validate:"required,min=0"`
	Latitude     *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Closed       bool     `json:"closed"`
	Note         string   `json:"note" validate:"max=255"`
}

func (r *BorderPointRequest) toEntity() *entity.BorderPoint {
	return &entity.BorderPoint{
		BoundaryCode: r.BoundaryCode,
		Sequence:     *r.Sequence,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		Closed:       r.Closed,
		Note:         r.Note,
	}
}

// ImportBoundaryRequest represents the request body for a GeoJSON import
type ImportBoundaryRequest struct {
	URL         string `json:"url" validate:"required"`
	DefaultCode string `json:"default_code" validate:"max=64"`
}

func (h *BorderHandler) bindPoint(c echo.Context) (*BorderPointRequest, bool) {
	var req BorderPointRequest
	if err := c.Bind(&req); err != nil {
		_ = response.BindingError(c, "INVALID_INPUT", "Invalid border point input")

		return nil, false
	}

	if err := c.Validate(&req); err != nil {
		_ = response.BadRequest(c, "VALIDATION_ERROR", err.Error())

		return nil, false
	}

	return &req, true
}

// CreatePoint handles POST /api/v1/admin/border-points
func (h *BorderHandler) CreatePoint(c echo.Context) error {
	req, ok := h.bindPoint(c)
	if !ok {
		return nil
	}

	point, err := h.borderUC.CreatePoint(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, point)
}

// ListPoints handles GET /api/v1/admin/border-points
func (h *BorderHandler) ListPoints(c echo.Context) error {
	points, err := h.borderUC.ListPoints(c.Request().Context(), c.QueryParam("boundary_code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

// GetPoint handles GET /api/v1/admin/border-points/:id
func (h *BorderHandler) GetPoint(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	point, err := h.borderUC.GetPoint(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point)
}

// UpdatePoint handles PUT /api/v1/admin/border-points/:id
func (h *BorderHandler) UpdatePoint(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	req, ok := h.bindPoint(c)
	if !ok {
		return nil
	}

	point := req.toEntity()
	point.ID = id

	updated, err := h.borderUC.UpdatePoint(c.Request().Context(), point)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// DeletePoint handles DELETE /api/v1/admin/border-points/:id
func (h *BorderHandler) DeletePoint(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	if err := h.borderUC.DeletePoint(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Import handles POST /api/v1/admin/border-points/import
func (h *BorderHandler) Import(c echo.Context) error {
	var req ImportBoundaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.borderUC.Import(c.Request().Context(), req.URL, req.DefaultCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
