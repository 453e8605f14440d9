package handler

import (
	"log/slog"
	"net/http"

	"vesselwatch/internal/delivery/api/response"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationTypeHandlerParams holds dependencies for NotificationTypeHandler, injected by Fx.
type NotificationTypeHandlerParams struct {
	fx.In

	NotificationTypeUC usecase.NotificationTypeUsecase
	Logger             *slog.Logger
}

// NotificationTypeHandler serves the notification type administration endpoints
type NotificationTypeHandler struct {
	notificationTypeUC usecase.NotificationTypeUsecase
	logger             *slog.Logger
}

// NewNotificationTypeHandler is the constructor for NotificationTypeHandler
func NewNotificationTypeHandler(params NotificationTypeHandlerParams) *NotificationTypeHandler {
	return &NotificationTypeHandler{
		notificationTypeUC: params.NotificationTypeUC,
		logger:             params.Logger,
	}
}

// NotificationTypeRequest represents the request body for creating or replacing a notification type
type NotificationTypeRequest struct {
	Code                   string  `json:"code" validate:"required,max=64"`
	Name                   string  `json:"name" validate:"required,max=128"`
	Form                   string  `json:"form" validate:"max=64"`
	Icon                   string  `json:"icon" validate:"max=64"`
	Color                  string  `json:"color" validate:"max=32"`
	Priority               int     `json:"priority" validate:"min=0"`
	NextAction             *string `json:"next_action" validate:"omitempty,max=64"`
	NextNotificationTypeID *string `json:"next_notification_type_id" validate:"omitempty,uuid"`
	TitleTemplate          string  `json:"title_template" validate:"required"`
	BodyTemplate           string  `json:"body_template" validate:"required"`
	MaxRetry               int     `json:"max_retry" validate:"min=0,max=20"`
	RepeatUntilResolved    bool    `json:"repeat_until_resolved"`
	RepeatDaily            bool    `json:"repeat_daily"`
}

func (r *NotificationTypeRequest) toEntity() *entity.NotificationType {
	notificationType := &entity.NotificationType{
		Code:                r.Code,
		Name:                r.Name,
		Form:                r.Form,
		Icon:                r.Icon,
		Color:               r.Color,
		Priority:            r.Priority,
		NextAction:          r.NextAction,
		TitleTemplate:       r.TitleTemplate,
		BodyTemplate:        r.BodyTemplate,
		MaxRetry:            r.MaxRetry,
		RepeatUntilResolved: r.RepeatUntilResolved,
		RepeatDaily:         r.RepeatDaily,
	}
	if r.NextNotificationTypeID != nil {
		id := uuid.MustParse(*r.NextNotificationTypeID)
		notificationType.NextNotificationTypeID = &id
	}

	return notificationType
}

func (h *NotificationTypeHandler) bind(c echo.Context) (*NotificationTypeRequest, bool) {
	var req NotificationTypeRequest
	if err := c.Bind(&req); err != nil {
		_ = response.BindingError(c, "INVALID_INPUT", "Invalid notification type input")

		return nil, false
	}

	if err := c.Validate(&req); err != nil {
		_ = response.BadRequest(c, "VALIDATION_ERROR", err.Error())

		return nil, false
	}

	return &req, true
}

// Create handles POST /api/v1/admin/notification-types
func (h *NotificationTypeHandler) Create(c echo.Context) error {
	req, ok := h.bind(c)
	if !ok {
		return nil
	}

	created, err := h.notificationTypeUC.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/v1/admin/notification-types
func (h *NotificationTypeHandler) List(c echo.Context) error {
	types, err := h.notificationTypeUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, types)
}

// Get handles GET /api/v1/admin/notification-types/:id
func (h *NotificationTypeHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	notificationType, err := h.notificationTypeUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notificationType)
}

// Update handles PUT /api/v1/admin/notification-types/:id
func (h *NotificationTypeHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	req, ok := h.bind(c)
	if !ok {
		return nil
	}

	notificationType := req.toEntity()
	notificationType.ID = id

	updated, err := h.notificationTypeUC.Update(c.Request().Context(), notificationType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/admin/notification-types/:id
func (h *NotificationTypeHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	if err := h.notificationTypeUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
