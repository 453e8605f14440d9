package pubsub

import (
	"encoding/json"

	"vesselwatch/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
	AttrShipID    = "ship_id"
)

// PushMessage represents the structure of a Pub/Sub push delivery.
// The local publisher produces it and the engine's push endpoint consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// outbound is one encoded event ready to be published.
type outbound struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodePosition(event *service.PositionEvent) (*outbound, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventType: service.EventTypePositionReported,
		AttrShipID:    event.ShipID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	// samples of one ship are delivered in publish order
	return &outbound{data: data, attributes: attributes, orderingKey: event.ShipID}, nil
}

func encodeEvent(eventType string, payload any) (*outbound, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &outbound{data: data, attributes: map[string]string{AttrEventType: eventType}}, nil
}
