package gps

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ships/VW%2F01/position", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lat": 25.04, "lng": 121.51, "observedAt": "2026-03-14T08:00:00Z"}`))
	}))
	defer server.Close()

	source := newHTTPSource(server.URL+"/v1/", time.Second, discardLogger())
	ship := &entity.Ship{ID: uuid.New(), Code: "VW/01"}

	sample, err := source.Fetch(context.Background(), ship)
	require.NoError(t, err)
	assert.Equal(t, ship.ID, sample.ShipID)
	assert.InDelta(t, 25.04, sample.Latitude, 1e-9)
	assert.InDelta(t, 121.51, sample.Longitude, 1e-9)
	assert.Equal(t, time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC), sample.ObservedAt.UTC())
	assert.Equal(t, "gps", sample.Source)
}

func TestHTTPSource_Fetch_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ships/MISSING/position" {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		_, _ = w.Write([]byte("{"))
	}))
	defer server.Close()

	source := newHTTPSource(server.URL, time.Second, discardLogger())

	_, err := source.Fetch(context.Background(), &entity.Ship{Code: "MISSING"})
	assert.ErrorContains(t, err, "status 404")
	assert.True(t, errors.IsPermanent(err))

	_, err = source.Fetch(context.Background(), &entity.Ship{Code: "GARBLED"})
	assert.ErrorContains(t, err, "decode")
	assert.False(t, errors.IsPermanent(err))
}

func TestNewHTTPSource_Disabled(t *testing.T) {
	assert.Nil(t, NewHTTPSource(&config.Config{Engine: &config.EngineConfig{}}, discardLogger()))
}
