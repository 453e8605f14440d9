package impl

import (
	"testing"
	"time"

	"vesselwatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMessage_Defaults(t *testing.T) {
	notificationType := &entity.NotificationType{Code: "BOUNDARY_CROSSED", Name: "Boundary crossed"}
	dist := -42.4
	data := newMessageData(&entity.Ship{Name: "Sea Star", Code: "TW-001"}, notificationType, "EEZ-NORTH",
		entity.GeofenceEventCrossed, nil, nil, &dist, time.Now())

	title, body, err := renderMessage(notificationType, data)

	require.NoError(t, err)
	assert.Equal(t, "Boundary crossed", title)
	assert.Equal(t, "Sea Star (TW-001) crossed boundary EEZ-NORTH, 42 m away.", body)
}

func TestRenderMessage_CustomTemplates(t *testing.T) {
	notificationType := &entity.NotificationType{
		Name:          "Near",
		TitleTemplate: "{{.ShipCode}} near {{.Boundary}}",
		BodyTemplate:  `{{printf "%.1f" .DistanceMeters}}m at {{printf "%.2f" .Latitude}},{{printf "%.2f" .Longitude}}`,
	}
	lat, lng, dist := 25.123, 121.456, 310.0
	data := newMessageData(&entity.Ship{Code: "TW-002"}, notificationType, "LINE",
		entity.GeofenceEventNearWarning, &lat, &lng, &dist, time.Now())

	title, body, err := renderMessage(notificationType, data)

	require.NoError(t, err)
	assert.Equal(t, "TW-002 near LINE", title)
	assert.Equal(t, "310.0m at 25.12,121.46", body)
}

func TestValidateTemplates(t *testing.T) {
	assert.NoError(t, validateTemplates(&entity.NotificationType{Name: "ok"}))
	assert.Error(t, validateTemplates(&entity.NotificationType{Name: "bad", BodyTemplate: "{{.Missing"}))
	assert.Error(t, validateTemplates(&entity.NotificationType{Name: "unknown field", TitleTemplate: "{{.NoSuchField}}"}))
}
