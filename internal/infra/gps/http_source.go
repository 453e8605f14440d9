// Package gps polls an external tracker service for ship positions.
package gps

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/errors"
)

const (
	defaultSourceTimeout = 10 * time.Second
	maxResponseBytes     = 64 << 10
	sourceName           = "gps"
)

// positionResponse is the tracker's JSON body.
type positionResponse struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ObservedAt time.Time `json:"observedAt"`
}

type httpSource struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates the tracker client. It returns nil when no endpoint is configured,
// which leaves tracking unavailable.
func NewHTTPSource(cfg *config.Config, logger *slog.Logger) service.PositionSource {
	if cfg.Engine == nil || cfg.Engine.Tracking.SourceEndpoint == "" {
		logger.Info("GPS source not configured, ship tracking disabled")

		return nil
	}

	timeout := cfg.Engine.Tracking.SourceTimeout
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}

	return newHTTPSource(cfg.Engine.Tracking.SourceEndpoint, timeout, logger)
}

func newHTTPSource(endpoint string, timeout time.Duration, logger *slog.Logger) *httpSource {
	return &httpSource{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch asks the tracker for the latest position of a ship, addressed by its registration code.
func (s *httpSource) Fetch(ctx context.Context, ship *entity.Ship) (*entity.PositionSample, error) {
	target := s.endpoint + "/ships/" + url.PathEscape(ship.Code) + "/position"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "tracker request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// the tracker does not know this ship; polling again will not change that
		return nil, errors.Permanent(errors.Errorf("tracker returned status %d for ship %s", resp.StatusCode, ship.Code))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("tracker returned status %d for ship %s", resp.StatusCode, ship.Code)
	}

	var body positionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode tracker response")
	}

	s.logger.Debug("[Tracker] Position fetched",
		slog.String("ship_code", ship.Code),
		slog.Float64("lat", body.Lat),
		slog.Float64("lng", body.Lng),
	)

	return &entity.PositionSample{
		ShipID:     ship.ID,
		Latitude:   body.Lat,
		Longitude:  body.Lng,
		ObservedAt: body.ObservedAt,
		Source:     sourceName,
	}, nil
}
