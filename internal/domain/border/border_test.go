package border

import (
	"math"
	"testing"

	"vesselwatch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metersPerDegreeLat = earthRadiusM * math.Pi / 180

func eastwardLine(code string) []*entity.BorderPoint {
	return []*entity.BorderPoint{
		{BoundaryCode: code, Sequence: 2, Latitude: 25.0, Longitude: 122.0},
		{BoundaryCode: code, Sequence: 1, Latitude: 25.0, Longitude: 121.0},
	}
}

func square(code string) []*entity.BorderPoint {
	return []*entity.BorderPoint{
		{BoundaryCode: code, Sequence: 1, Latitude: 10.0, Longitude: 120.0},
		{BoundaryCode: code, Sequence: 2, Latitude: 10.0, Longitude: 121.0},
		{BoundaryCode: code, Sequence: 3, Latitude: 11.0, Longitude: 121.0},
		{BoundaryCode: code, Sequence: 4, Latitude: 11.0, Longitude: 120.0},
		{BoundaryCode: code, Sequence: 5, Latitude: 10.0, Longitude: 120.0},
	}
}

func offsetNorth(lat, meters float64) float64 {
	return lat + meters/metersPerDegreeLat
}

func TestNew_GroupsAndOrdersPoints(t *testing.T) {
	points := append(eastwardLine("LINE"), square("AREA")...)
	model := New(points)

	require.Len(t, model.Boundaries(), 2)
	area, ok := model.Boundary("AREA")
	require.True(t, ok)
	assert.Equal(t, Polygon, area.Kind)
	assert.Len(t, area.Points, 4, "closing point is dropped")

	line, ok := model.Boundary("LINE")
	require.True(t, ok)
	assert.Equal(t, Polyline, line.Kind)
	assert.Equal(t, orb.Point{121.0, 25.0}, line.Points[0], "points ordered by sequence")
}

func TestNew_ClosedFlagMakesPolygon(t *testing.T) {
	points := square("AREA")[:4]
	points[2].Closed = true

	area, ok := New(points).Boundary("AREA")
	require.True(t, ok)
	assert.Equal(t, Polygon, area.Kind)
}

func TestBoundary_PolylineSign(t *testing.T) {
	line, _ := New(eastwardLine("LINE")).Boundary("LINE")

	tests := []struct {
		name   string
		meters float64
	}{
		{name: "50m south is right of travel", meters: -50},
		{name: "30m north is left of travel", meters: 30},
		{name: "far north", meters: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := orb.Point{121.5, offsetNorth(25.0, tt.meters)}
			meas, ok := line.DistanceToBoundary(pos)

			require.True(t, ok)
			assert.InDelta(t, tt.meters, meas.DistanceMeters, 1.0)
			assert.Equal(t, "LINE", meas.BoundaryCode)
			assert.Equal(t, 0, meas.Segment.Index)
		})
	}
}

func TestBoundary_PolygonInsideIsNegative(t *testing.T) {
	area, _ := New(square("AREA")).Boundary("AREA")

	inside, ok := area.DistanceToBoundary(orb.Point{120.5, offsetNorth(10.0, 200)})
	require.True(t, ok)
	assert.InDelta(t, -200, inside.DistanceMeters, 1.0)
	assert.Equal(t, -1, inside.Side())

	outside, ok := area.DistanceToBoundary(orb.Point{120.5, offsetNorth(10.0, -300)})
	require.True(t, ok)
	assert.InDelta(t, 300, outside.DistanceMeters, 1.0)
	assert.Equal(t, 1, outside.Side())
}

func TestBoundary_NearestSegmentOnClosingEdge(t *testing.T) {
	area, _ := New(square("AREA")).Boundary("AREA")

	// west edge runs from the last vertex back to the first
	seg, ok := area.NearestSegment(orb.Point{119.99, 10.5})
	require.True(t, ok)
	assert.Equal(t, 3, seg.Index)
	assert.InDelta(t, 120.0, seg.Closest.Lon(), 1e-6)
	assert.InDelta(t, 10.5, seg.Closest.Lat(), 1e-6)
}

func TestBoundary_Undefined(t *testing.T) {
	single := []*entity.BorderPoint{{BoundaryCode: "ONE", Sequence: 1, Latitude: 1, Longitude: 1}}
	model := New(single)

	b, ok := model.Boundary("ONE")
	require.True(t, ok)
	assert.False(t, b.Defined())

	_, ok = b.DistanceToBoundary(orb.Point{1, 1})
	assert.False(t, ok)

	_, ok = model.DistanceToBoundary(orb.Point{1, 1})
	assert.False(t, ok)
}

func TestBoundary_DegenerateAndInvalidInput(t *testing.T) {
	dup := []*entity.BorderPoint{
		{BoundaryCode: "DUP", Sequence: 1, Latitude: 5, Longitude: 5},
		{BoundaryCode: "DUP", Sequence: 2, Latitude: 5, Longitude: 5},
		{BoundaryCode: "DUP", Sequence: 3, Latitude: math.NaN(), Longitude: 5},
	}
	b, _ := New(dup).Boundary("DUP")

	assert.NotPanics(t, func() {
		_, ok := b.DistanceToBoundary(orb.Point{5, 5.1})
		assert.False(t, ok, "all segments are zero length")
	})

	line, _ := New(eastwardLine("LINE")).Boundary("LINE")
	_, ok := line.DistanceToBoundary(orb.Point{math.NaN(), 25})
	assert.False(t, ok)
	_, ok = line.DistanceToBoundary(orb.Point{121.5, math.Inf(1)})
	assert.False(t, ok)
}

func TestBoundary_AntimeridianLine(t *testing.T) {
	points := []*entity.BorderPoint{
		{BoundaryCode: "DATELINE", Sequence: 1, Latitude: 0, Longitude: 179.9},
		{BoundaryCode: "DATELINE", Sequence: 2, Latitude: 0, Longitude: -179.9},
	}
	line, _ := New(points).Boundary("DATELINE")

	meas, ok := line.DistanceToBoundary(orb.Point{180.0, offsetNorth(0, 100)})
	require.True(t, ok)
	assert.InDelta(t, 100, meas.DistanceMeters, 1.0)
}

func TestModel_DistanceToBoundaryPicksClosest(t *testing.T) {
	points := append(eastwardLine("NORTH"), []*entity.BorderPoint{
		{BoundaryCode: "SOUTH", Sequence: 1, Latitude: 24.0, Longitude: 121.0},
		{BoundaryCode: "SOUTH", Sequence: 2, Latitude: 24.0, Longitude: 122.0},
	}...)
	model := New(points)

	meas, ok := model.DistanceToBoundary(orb.Point{121.5, 24.9})
	require.True(t, ok)
	assert.Equal(t, "NORTH", meas.BoundaryCode)

	code, seg, ok := model.NearestSegment(orb.Point{121.5, 24.1})
	require.True(t, ok)
	assert.Equal(t, "SOUTH", code)
	assert.Equal(t, orb.Point{121.0, 24.0}, seg.From)
}

func TestModel_MonotoneCrossingChangesSignOnce(t *testing.T) {
	line, _ := New(eastwardLine("LINE")).Boundary("LINE")

	changes := 0
	prev := 0
	for meters := -500.0; meters <= 500; meters += 37 {
		meas, ok := line.DistanceToBoundary(orb.Point{121.5, offsetNorth(25.0, meters)})
		require.True(t, ok)
		if prev != 0 && meas.Side() != 0 && meas.Side() != prev {
			changes++
		}
		if meas.Side() != 0 {
			prev = meas.Side()
		}
	}

	assert.Equal(t, 1, changes)
}
