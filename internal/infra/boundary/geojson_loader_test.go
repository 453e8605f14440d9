package boundary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vesselwatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const boundaryCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"boundary_code": "EEZ-NORTH"},
      "geometry": {"type": "LineString", "coordinates": [[121.0, 25.0], [122.0, 25.5], [123.0, 26.0]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "HARBOUR"},
      "geometry": {"type": "Polygon", "coordinates": [[[120.0, 22.0], [120.1, 22.0], [120.1, 22.1], [120.0, 22.0]]]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [120.0, 22.0]}
    }
  ]
}`

func newTestLoader(t *testing.T, files map[string]string) *geoJSONLoader {
	t.Helper()

	return &geoJSONLoader{
		// the loader closes the bucket after each load, so every open starts fresh
		open: func(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
			assert.Equal(t, "mem://boundaries", bucketURL)

			bucket := memblob.OpenBucket(nil)
			for key, content := range files {
				if err := bucket.WriteAll(ctx, key, []byte(content), nil); err != nil {
					return nil, err
				}
			}

			return bucket, nil
		},
		maxBytes: defaultMaxFileBytes,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGeoJSONLoader_Load(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"zones/taiwan.geojson": boundaryCollection})

	points, err := loader.Load(context.Background(), "mem://boundaries/zones/taiwan.geojson", "IMPORTED")
	require.NoError(t, err)
	require.Len(t, points, 6)

	assert.Equal(t, "EEZ-NORTH", points[0].BoundaryCode)
	assert.Equal(t, 0, points[0].Sequence)
	assert.InDelta(t, 25.0, points[0].Latitude, 1e-9)
	assert.InDelta(t, 121.0, points[0].Longitude, 1e-9)
	assert.False(t, points[0].Closed)
	assert.Equal(t, 2, points[2].Sequence)

	harbour := points[3:]
	for _, p := range harbour {
		assert.Equal(t, "HARBOUR", p.BoundaryCode)
		assert.True(t, p.Closed)
	}
}

func TestGeoJSONLoader_DefaultCodes(t *testing.T) {
	bare := `{"type": "MultiLineString", "coordinates": [[[1, 1], [2, 2]], [[3, 3], [4, 4]]]}`
	loader := newTestLoader(t, map[string]string{"bare.json": bare})

	points, err := loader.Load(context.Background(), "mem://boundaries/bare.json", "LINE")
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, "LINE-1", points[0].BoundaryCode)
	assert.Equal(t, "LINE-2", points[2].BoundaryCode)
}

func TestGeoJSONLoader_Errors(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"broken.geojson": "not json"})

	_, err := loader.Load(context.Background(), "mem://boundaries/broken.geojson", "X")
	assert.ErrorContains(t, err, "not GeoJSON")

	_, err = loader.Load(context.Background(), "mem://boundaries/missing.geojson", "X")
	assert.Error(t, err)
}

func TestGeoJSONLoader_SizeLimit(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"zones/taiwan.geojson": boundaryCollection})
	loader.maxBytes = 64

	_, err := loader.Load(context.Background(), "mem://boundaries/zones/taiwan.geojson", "X")
	assert.ErrorContains(t, err, "limit is 64 B")
}

func TestNewGeoJSONLoader_MaxFileSize(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	configured := NewGeoJSONLoader(&config.Config{BorderImport: &config.BorderImportConfig{MaxFileSize: "1MB"}}, logger)
	assert.Equal(t, int64(1<<20), configured.(*geoJSONLoader).maxBytes)

	fallback := NewGeoJSONLoader(&config.Config{}, logger)
	assert.Equal(t, int64(defaultMaxFileBytes), fallback.(*geoJSONLoader).maxBytes)
}

func TestSplitObjectURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "file", url: "file:///data/borders/eez.geojson", wantBucket: "file:///data/borders/", wantKey: "eez.geojson"},
		{name: "gcs", url: "gs://vesselwatch-borders/2026/eez.geojson", wantBucket: "gs://vesselwatch-borders", wantKey: "2026/eez.geojson"},
		{name: "no key", url: "gs://vesselwatch-borders", wantErr: true},
		{name: "no scheme", url: "/data/eez.geojson", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitObjectURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
