package handler

import (
	"strconv"
	"strings"
	"time"

	"vesselwatch/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

var errInvalidQuery = errors.New("invalid query parameter")

// pathID parses a uuid path parameter and writes the 400 response itself when it is malformed.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = response.BadRequest(c, "INVALID_ID", "Invalid "+name)

		return uuid.Nil, false
	}

	return id, true
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(errInvalidQuery, "%s: %s", name, raw)
	}

	return &id, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Wrapf(errInvalidQuery, "%s: %s", name, raw)
	}

	return &v, nil
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.Wrapf(errInvalidQuery, "%s must be RFC3339", name)
	}

	return &v, nil
}

// queryPage reads limit and offset, clamping limit to the allowed page size.
func queryPage(c echo.Context) (limit, offset int, err error) {
	limit = defaultPageLimit
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return 0, 0, errors.Wrap(errInvalidQuery, "limit and offset must be integers")
	}

	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}

func errorf(format string, args ...any) error {
	return errors.Wrapf(errInvalidQuery, format, args...)
}
