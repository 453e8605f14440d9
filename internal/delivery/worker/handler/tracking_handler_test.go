package handler

import (
	"net/http"
	"testing"

	domainerrors "vesselwatch/internal/domain/errors"
	usecasemocks "vesselwatch/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingHandler(t *testing.T) (*TrackingHandler, *usecasemocks.MockTrackingUsecase) {
	tracking := usecasemocks.NewMockTrackingUsecase(t)

	return NewTrackingHandler(TrackingHandlerParams{Tracking: tracking, Logger: discardLogger()}), tracking
}

func TestTrackingControl(t *testing.T) {
	shipID := uuid.New()

	t.Run("start", func(t *testing.T) {
		h, tracking := newTrackingHandler(t)
		tracking.EXPECT().Start(mock.Anything, shipID).Return(nil)

		c, rec := newContext(http.MethodPost, "/", `{"action":"start"}`)
		c.SetParamNames("id")
		c.SetParamValues(shipID.String())

		require.NoError(t, h.Control(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"tracking":true`)
	})

	t.Run("stop", func(t *testing.T) {
		h, tracking := newTrackingHandler(t)
		tracking.EXPECT().Stop(shipID).Return(true)

		c, rec := newContext(http.MethodPost, "/", `{"action":"stop"}`)
		c.SetParamNames("id")
		c.SetParamValues(shipID.String())

		require.NoError(t, h.Control(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"tracking":false`)
	})

	t.Run("source not configured", func(t *testing.T) {
		h, tracking := newTrackingHandler(t)
		tracking.EXPECT().Start(mock.Anything, shipID).Return(domainerrors.ErrTrackingUnavailable)

		c, rec := newContext(http.MethodPost, "/", `{"action":"start"}`)
		c.SetParamNames("id")
		c.SetParamValues(shipID.String())

		require.NoError(t, h.Control(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown action", func(t *testing.T) {
		h, _ := newTrackingHandler(t)

		c, rec := newContext(http.MethodPost, "/", `{"action":"pause"}`)
		c.SetParamNames("id")
		c.SetParamValues(shipID.String())

		require.NoError(t, h.Control(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackingList(t *testing.T) {
	h, tracking := newTrackingHandler(t)
	a, b := uuid.New(), uuid.New()
	tracking.EXPECT().Running().Return([]uuid.UUID{a, b})

	c, rec := newContext(http.MethodGet, "/", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), a.String())
	assert.Contains(t, rec.Body.String(), b.String())
}
