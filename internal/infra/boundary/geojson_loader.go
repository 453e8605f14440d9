// Package boundary reads boundary definitions from GeoJSON or CSV files in blob storage.
package boundary

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strconv"
	"strings"

	"vesselwatch/config"
	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// bucket drivers reachable through file://, gs:// and mem:// URLs
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// defaultMaxFileBytes bounds how much of a boundary file is read when config has no limit.
const defaultMaxFileBytes = 32 << 20

// property keys that may carry a boundary code, in lookup order
var codeKeys = []string{"boundary_code", "code", "name"}

type bucketOpener func(ctx context.Context, bucketURL string) (*blob.Bucket, error)

type geoJSONLoader struct {
	open     bucketOpener
	maxBytes int64
	logger   *slog.Logger
}

// NewGeoJSONLoader creates a BoundaryLoader that opens buckets through gocloud URLs.
func NewGeoJSONLoader(cfg *config.Config, logger *slog.Logger) service.BoundaryLoader {
	maxBytes := int64(defaultMaxFileBytes)
	if cfg.BorderImport != nil && cfg.BorderImport.MaxFileSize != "" {
		if parsed, err := util.ParseBytes(cfg.BorderImport.MaxFileSize); err == nil && parsed > 0 {
			maxBytes = parsed
		}
	}

	return &geoJSONLoader{open: blob.OpenBucket, maxBytes: maxBytes, logger: logger}
}

// Load reads a GeoJSON or CSV file and returns the ordered points of every line or polygon in it.
func (l *geoJSONLoader) Load(ctx context.Context, rawURL, defaultCode string) ([]*entity.BorderPoint, error) {
	bucketURL, key, err := splitObjectURL(rawURL)
	if err != nil {
		return nil, err
	}

	bucket, err := l.open(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	defer bucket.Close()

	attrs, err := bucket.Attributes(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", key)
	}
	if attrs.Size > l.maxBytes {
		return nil, errors.Errorf("boundary file is %s, limit is %s", util.FormatBytes(attrs.Size), util.FormatBytes(l.maxBytes))
	}

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	var points []*entity.BorderPoint
	if strings.EqualFold(path.Ext(key), ".csv") {
		points, err = parseCSVPoints(data, defaultCode)
	} else {
		points, err = parseGeoJSONPoints(data, defaultCode)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("Boundary file parsed",
		slog.String("url", rawURL),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.Int("points", len(points)),
	)

	return points, nil
}

func parseGeoJSONPoints(data []byte, defaultCode string) ([]*entity.BorderPoint, error) {
	features, err := decodeFeatures(data)
	if err != nil {
		return nil, err
	}

	return parseFeatures(features, defaultCode), nil
}

// splitObjectURL turns scheme://bucket/dir/file.geojson into a bucket URL and object key.
// file URLs keep the directory in the bucket so fileblob serves it as a root.
func splitObjectURL(rawURL string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid boundary url")
	}

	switch parsed.Scheme {
	case "file":
		dir, file := path.Split(parsed.Path)
		if file == "" {
			return "", "", errors.New("boundary url has no file name")
		}

		return "file://" + dir, file, nil
	case "":
		return "", "", errors.New("boundary url has no scheme")
	default:
		key := strings.TrimPrefix(parsed.Path, "/")
		if key == "" {
			return "", "", errors.New("boundary url has no object key")
		}
		bucket := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host, RawQuery: parsed.RawQuery}

		return bucket.String(), key, nil
	}
}

// decodeFeatures accepts a FeatureCollection, a single Feature or a bare geometry.
func decodeFeatures(data []byte) ([]*geojson.Feature, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && fc.Type == "FeatureCollection" {
		return fc.Features, nil
	}

	if feature, err := geojson.UnmarshalFeature(data); err == nil && feature.Type == "Feature" {
		return []*geojson.Feature{feature}, nil
	}

	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "file is not GeoJSON")
	}

	return []*geojson.Feature{geojson.NewFeature(geometry.Geometry())}, nil
}

// part is one line or ring extracted from a feature.
type part struct {
	code   string
	points []orb.Point
	closed bool
}

func parseFeatures(features []*geojson.Feature, defaultCode string) []*entity.BorderPoint {
	var parts []part
	unnamed := 0

	for _, feature := range features {
		if feature == nil || feature.Geometry == nil {
			continue
		}

		code := featureCode(feature)
		lines := extractLines(feature.Geometry)
		for i, line := range lines {
			c := code
			if c != "" && len(lines) > 1 {
				c = code + "-" + strconv.Itoa(i+1)
			}
			if c == "" {
				unnamed++
			}
			parts = append(parts, part{code: c, points: line.points, closed: line.closed})
		}
	}

	var points []*entity.BorderPoint
	n := 0
	for _, p := range parts {
		code := p.code
		if code == "" {
			code = defaultCode
			if unnamed > 1 {
				n++
				code = defaultCode + "-" + strconv.Itoa(n)
			}
		}

		for seq, pt := range p.points {
			points = append(points, &entity.BorderPoint{
				BoundaryCode: code,
				Sequence:     seq,
				Latitude:     pt.Lat(),
				Longitude:    pt.Lon(),
				Closed:       p.closed,
			})
		}
	}

	return points
}

type line struct {
	points []orb.Point
	closed bool
}

func extractLines(geometry orb.Geometry) []line {
	switch g := geometry.(type) {
	case orb.LineString:
		if len(g) >= 2 {
			return []line{{points: g}}
		}
	case orb.MultiLineString:
		var out []line
		for _, ls := range g {
			out = append(out, extractLines(ls)...)
		}

		return out
	case orb.Ring:
		return ringLine(g)
	case orb.Polygon:
		// holes are not boundaries of their own
		if len(g) > 0 {
			return ringLine(g[0])
		}
	case orb.MultiPolygon:
		var out []line
		for _, polygon := range g {
			out = append(out, extractLines(polygon)...)
		}

		return out
	}

	return nil
}

// ringLine drops the closing vertex; closed points are joined back by the border model.
func ringLine(ring orb.Ring) []line {
	points := []orb.Point(ring)
	if len(points) >= 2 && points[0].Equal(points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	if len(points) < 3 {
		return nil
	}

	return []line{{points: points, closed: true}}
}

func featureCode(feature *geojson.Feature) string {
	for _, key := range codeKeys {
		if value, ok := feature.Properties[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}

	return ""
}
