package boundary

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"vesselwatch/internal/domain/entity"

	"github.com/pkg/errors"
)

const minCSVColumns = 4

// parseCSVPoints reads border points from a CSV export.
// Expected format: boundary_code,sequence,latitude,longitude[,closed]
// The first row is a header. An empty boundary_code falls back to defaultCode.
func parseCSVPoints(data []byte, defaultCode string) ([]*entity.BorderPoint, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.Wrap(err, "boundary csv has no header")
	}

	var points []*entity.BorderPoint
	closed := make(map[string]bool)
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < minCSVColumns {
			return nil, errors.Errorf("invalid boundary csv at line %d: expected at least %d columns, got %d", lineNum, minCSVColumns, len(record))
		}

		point, err := parseCSVPoint(record, lineNum, defaultCode)
		if err != nil {
			return nil, err
		}
		if point.Closed {
			closed[point.BoundaryCode] = true
		}

		points = append(points, point)
	}

	// closed is a property of the whole boundary, a single flagged row closes it
	for _, point := range points {
		point.Closed = closed[point.BoundaryCode]
	}

	return points, nil
}

func parseCSVPoint(record []string, lineNum int, defaultCode string) (*entity.BorderPoint, error) {
	code := strings.TrimSpace(record[0])
	if code == "" {
		code = defaultCode
	}

	sequence, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sequence at line %d", lineNum)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid latitude at line %d", lineNum)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid longitude at line %d", lineNum)
	}

	point := &entity.BorderPoint{
		BoundaryCode: code,
		Sequence:     sequence,
		Latitude:     lat,
		Longitude:    lng,
	}

	if len(record) > minCSVColumns && strings.TrimSpace(record[4]) != "" {
		point.Closed, err = strconv.ParseBool(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid closed flag at line %d", lineNum)
		}
	}

	return point, nil
}
