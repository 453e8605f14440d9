package handler

import (
	"net/http"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	usecasemocks "vesselwatch/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTypeHandler(t *testing.T) (*NotificationTypeHandler, *usecasemocks.MockNotificationTypeUsecase) {
	typeUC := usecasemocks.NewMockNotificationTypeUsecase(t)

	return NewNotificationTypeHandler(NotificationTypeHandlerParams{NotificationTypeUC: typeUC, Logger: discardLogger()}), typeUC
}

func TestCreateNotificationType(t *testing.T) {
	h, typeUC := newNotificationTypeHandler(t)
	nextID := uuid.New()

	typeUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(nt *entity.NotificationType) bool {
		return nt.Code == "BOUNDARY_CROSSED" && nt.Priority == 10 && nt.MaxRetry == 3 &&
			nt.NextNotificationTypeID != nil && *nt.NextNotificationTypeID == nextID &&
			nt.HasNextAction() && nt.RepeatUntilResolved
	})).Return(&entity.NotificationType{ID: uuid.New(), Code: "BOUNDARY_CROSSED"}, nil)

	body := `{"code":"BOUNDARY_CROSSED","name":"Boundary crossed","priority":10,"max_retry":3,` +
		`"next_action":"FOLLOW_UP","next_notification_type_id":"` + nextID.String() + `",` +
		`"title_template":"{{.ShipName}} crossed","body_template":"{{.BoundaryCode}}","repeat_until_resolved":true}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/notification-types", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateNotificationType_Validation(t *testing.T) {
	h, _ := newNotificationTypeHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/notification-types",
		`{"code":"X","name":"x","title_template":"t","body_template":"b","next_notification_type_id":"bogus"}`)

	require.NoError(t, h.Create(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestCreateNotificationType_DuplicateCode(t *testing.T) {
	h, typeUC := newNotificationTypeHandler(t)

	typeUC.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotificationTypeCodeExists)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/notification-types",
		`{"code":"X","name":"x","title_template":"t","body_template":"b"}`)

	require.NoError(t, h.Create(c))
	requireErrorCode(t, rec, http.StatusConflict, "NOTIFICATION_TYPE_CODE_EXISTS")
}

func TestUpdateAndDeleteNotificationType(t *testing.T) {
	h, typeUC := newNotificationTypeHandler(t)
	id := uuid.New()

	typeUC.EXPECT().Update(mock.Anything, mock.MatchedBy(func(nt *entity.NotificationType) bool {
		return nt.ID == id && nt.Name == "renamed"
	})).Return(&entity.NotificationType{ID: id, Name: "renamed"}, nil)
	typeUC.EXPECT().Delete(mock.Anything, id).Return(nil)

	c, rec := newTestContext(http.MethodPut, "/",
		`{"code":"X","name":"renamed","title_template":"t","body_template":"b"}`)
	require.NoError(t, h.Update(withParam(c, "id", id.String())))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodDelete, "/", "")
	require.NoError(t, h.Delete(withParam(c, "id", id.String())))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListNotificationTypes(t *testing.T) {
	h, typeUC := newNotificationTypeHandler(t)

	typeUC.EXPECT().List(mock.Anything).Return([]*entity.NotificationType{{Code: "A"}, {Code: "B"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"B"`)
}
