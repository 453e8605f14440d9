package impl

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/errors"
)

const (
	defaultTitleTemplate = `{{.TypeName}}`
	defaultBodyTemplate  = `{{.ShipName}} ({{.ShipCode}}) {{.EventText}}{{if .Boundary}} boundary {{.Boundary}}{{end}}{{if .HasDistance}}, {{printf "%.0f" .DistanceMeters}} m away{{end}}.`
)

// messageData is what title and body templates can reference.
type messageData struct {
	TypeCode       string
	TypeName       string
	ShipName       string
	ShipCode       string
	Boundary       string
	Event          string
	EventText      string
	HasDistance    bool
	DistanceMeters float64
	Latitude       float64
	Longitude      float64
	ObservedAt     time.Time
}

func newMessageData(ship *entity.Ship, notificationType *entity.NotificationType, boundary string, event entity.GeofenceEvent, lat, lng, distance *float64, observedAt time.Time) messageData {
	data := messageData{
		TypeCode:   notificationType.Code,
		TypeName:   notificationType.Name,
		Boundary:   boundary,
		Event:      string(event),
		EventText:  eventText(event),
		ObservedAt: observedAt,
	}
	if ship != nil {
		data.ShipName = ship.Name
		data.ShipCode = ship.Code
	}
	if lat != nil && lng != nil {
		data.Latitude = *lat
		data.Longitude = *lng
	}
	if distance != nil {
		data.HasDistance = true
		data.DistanceMeters = math.Abs(*distance)
	}

	return data
}

func eventText(event entity.GeofenceEvent) string {
	switch event {
	case entity.GeofenceEventCrossed:
		return "crossed"
	case entity.GeofenceEventNearWarning:
		return "is approaching"
	case entity.GeofenceEventCleared:
		return "moved away from"
	default:
		return "reported near"
	}
}

// renderMessage renders the title and body of a notification type.
func renderMessage(notificationType *entity.NotificationType, data messageData) (title, body string, err error) {
	titleTpl := notificationType.TitleTemplate
	if strings.TrimSpace(titleTpl) == "" {
		titleTpl = defaultTitleTemplate
	}
	bodyTpl := notificationType.BodyTemplate
	if strings.TrimSpace(bodyTpl) == "" {
		bodyTpl = defaultBodyTemplate
	}

	if title, err = execTemplate("title", titleTpl, data); err != nil {
		return "", "", err
	}
	if body, err = execTemplate("body", bodyTpl, data); err != nil {
		return "", "", err
	}

	return title, body, nil
}

func execTemplate(name, text string, data messageData) (string, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Wrapf(err, "parse %s template", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "execute %s template", name)
	}

	return strings.TrimSpace(buf.String()), nil
}

// validateTemplates checks that both templates of a type parse and render against sample data.
func validateTemplates(notificationType *entity.NotificationType) error {
	lat, lng, dist := 0.0, 0.0, 100.0
	sample := newMessageData(&entity.Ship{Name: "ship", Code: "CODE"}, notificationType, "BOUNDARY",
		entity.GeofenceEventNearWarning, &lat, &lng, &dist, time.Unix(0, 0).UTC())

	if _, _, err := renderMessage(notificationType, sample); err != nil {
		return fmt.Errorf("invalid notification template: %w", err)
	}

	return nil
}
