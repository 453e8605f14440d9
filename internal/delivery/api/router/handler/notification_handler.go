package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"vesselwatch/internal/delivery/api/response"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the operator-facing notification queries and actions
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	filter, err := parseNotificationFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	notifications, total, err := h.notificationUC.ListNotifications(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, notifications, total, filter.Limit, filter.Offset)
}

func parseNotificationFilter(c echo.Context) (*entity.NotificationFilter, error) {
	filter := &entity.NotificationFilter{}

	var err error
	if filter.ShipID, err = queryUUID(c, "ship_id"); err != nil {
		return nil, err
	}
	if filter.BoundaryCrossed, err = queryBool(c, "boundary_crossed"); err != nil {
		return nil, err
	}
	if filter.BoundaryNearWarning, err = queryBool(c, "boundary_near_warning"); err != nil {
		return nil, err
	}
	if filter.From, err = queryTime(c, "from"); err != nil {
		return nil, err
	}
	if filter.To, err = queryTime(c, "to"); err != nil {
		return nil, err
	}
	if filter.Limit, filter.Offset, err = queryPage(c); err != nil {
		return nil, err
	}

	// status accepts a comma separated list and may be repeated
	for _, raw := range c.QueryParams()["status"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			status := entity.NotificationStatus(part)
			if !status.IsValid() {
				return nil, errorf("unknown status %q", part)
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	return filter, nil
}

// GetNotification handles GET /api/v1/notifications/:id
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	detail, err := h.notificationUC.GetNotification(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetChain handles GET /api/v1/notifications/:id/chain
func (h *NotificationHandler) GetChain(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	chain, err := h.notificationUC.GetChain(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chain)
}

// MarkViewed handles POST /api/v1/notifications/:id/viewed
func (h *NotificationHandler) MarkViewed(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	notification, err := h.notificationUC.MarkViewed(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// Cancel handles POST /api/v1/notifications/:id/cancel
func (h *NotificationHandler) Cancel(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	notification, err := h.notificationUC.Cancel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Notification cancelled by operator", slog.String("notification_id", id.String()))

	return response.Success(c, http.StatusOK, notification)
}

// Resolve handles POST /api/v1/notifications/:id/resolve
func (h *NotificationHandler) Resolve(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	notification, err := h.notificationUC.Resolve(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Notification resolved by operator", slog.String("notification_id", id.String()))

	return response.Success(c, http.StatusOK, notification)
}
