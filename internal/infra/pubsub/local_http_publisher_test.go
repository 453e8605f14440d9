package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vesselwatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishPosition(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.PositionEvent{
		RequestID:  "req-7",
		ShipID:     "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Latitude:   25.03,
		Longitude:  121.56,
		ObservedAt: time.Date(2026, 4, 2, 3, 4, 5, 0, time.UTC),
		Source:     "api",
	}

	require.NoError(t, publisher.PublishPosition(context.Background(), event))

	assert.Equal(t, "req-7", requestID)
	assert.Equal(t, service.EventTypePositionReported, received.Message.Attributes[AttrEventType])
	assert.Equal(t, event.ShipID, received.Message.Attributes[AttrShipID])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.PositionEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_PublishPosition_EngineError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishPosition(context.Background(), &service.PositionEvent{ShipID: "s"})

	assert.ErrorContains(t, err, "500")
}
