// Package border holds maritime boundary geometry and answers signed distance queries against it.
package border

import (
	"math"
	"sort"

	"vesselwatch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

var earthRadiusM = orb.EarthRadius

// Kind tells how a boundary's points are joined.
type Kind int

const (
	// Polyline is an open line; its sign follows the direction of travel along the points.
	Polyline Kind = iota
	// Polygon is a closed ring; inside is negative.
	Polygon
)

func (k Kind) String() string {
	if k == Polygon {
		return "polygon"
	}

	return "polyline"
}

// Segment is the part of a boundary closest to a queried position.
type Segment struct {
	Index   int       // Index of the segment's first vertex.
	From    orb.Point // Segment start (lng, lat).
	To      orb.Point // Segment end (lng, lat).
	Closest orb.Point // Closest point on the segment to the query (lng, lat).
}

// Measurement is the signed distance from a position to one boundary.
// For polygons negative means inside. For polylines positive means left of travel direction.
type Measurement struct {
	BoundaryCode   string
	DistanceMeters float64
	Segment        Segment
}

// Side returns -1, 0 or +1 for the sign of the distance.
func (m Measurement) Side() int {
	switch {
	case m.DistanceMeters > 0:
		return 1
	case m.DistanceMeters < 0:
		return -1
	default:
		return 0
	}
}

// Boundary is one demarcation line or area.
type Boundary struct {
	Code   string
	Kind   Kind
	Points []orb.Point
}

// Defined reports whether the boundary has enough points to be evaluated.
func (b *Boundary) Defined() bool {
	return len(b.Points) >= 2
}

// NearestSegment returns the segment closest to position. ok is false for an undefined
// boundary or an unusable position.
func (b *Boundary) NearestSegment(position orb.Point) (Segment, bool) {
	seg, _, ok := b.nearest(position)

	return seg, ok
}

// DistanceToBoundary returns the signed distance in meters from position to the boundary.
// ok is false when the boundary is undefined or the position is not a finite coordinate.
func (b *Boundary) DistanceToBoundary(position orb.Point) (Measurement, bool) {
	seg, cross, ok := b.nearest(position)
	if !ok {
		return Measurement{}, false
	}

	dist := geo.DistanceHaversine(position, seg.Closest)

	switch b.Kind {
	case Polygon:
		if planar.RingContains(b.ring(), position) {
			dist = -dist
		}
	default:
		if cross < 0 {
			dist = -dist
		}
	}

	return Measurement{BoundaryCode: b.Code, DistanceMeters: dist, Segment: seg}, true
}

func (b *Boundary) ring() orb.Ring {
	ring := make(orb.Ring, len(b.Points), len(b.Points)+1)
	copy(ring, b.Points)
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return ring
}

func (b *Boundary) segmentCount() int {
	if b.Kind == Polygon {
		return len(b.Points)
	}

	return len(b.Points) - 1
}

// nearest projects the boundary into a local equirectangular plane centred on position
// and returns the closest segment together with the cross product of that segment's
// direction and the query offset.
func (b *Boundary) nearest(position orb.Point) (Segment, float64, bool) {
	if !b.Defined() || !validPoint(position) {
		return Segment{}, 0, false
	}

	proj := newProjection(position)

	best := Segment{}
	bestDist := math.Inf(1)
	bestCross := 0.0

	n := len(b.Points)
	for i := 0; i < b.segmentCount(); i++ {
		from, to := b.Points[i], b.Points[(i+1)%n]
		if from.Equal(to) {
			continue
		}

		ax, ay := proj.forward(from)
		bx, by := proj.forward(to)
		dx, dy := bx-ax, by-ay

		// query point sits at the projection origin
		t := -(ax*dx + ay*dy) / (dx*dx + dy*dy)
		t = math.Max(0, math.Min(1, t))
		cx, cy := ax+t*dx, ay+t*dy

		d := math.Hypot(cx, cy)
		if d < bestDist {
			bestDist = d
			bestCross = dx*(-ay) - dy*(-ax)
			best = Segment{Index: i, From: from, To: to, Closest: proj.inverse(cx, cy)}
		}
	}

	if math.IsInf(bestDist, 1) {
		// every segment was degenerate
		return Segment{}, 0, false
	}

	return best, bestCross, true
}

type projection struct {
	origin orb.Point
	cosLat float64
}

func newProjection(origin orb.Point) projection {
	return projection{origin: origin, cosLat: math.Cos(origin.Lat() * math.Pi / 180)}
}

func (p projection) forward(pt orb.Point) (float64, float64) {
	dLng := normalizeLng(pt.Lon() - p.origin.Lon())
	x := dLng * math.Pi / 180 * earthRadiusM * p.cosLat
	y := (pt.Lat() - p.origin.Lat()) * math.Pi / 180 * earthRadiusM

	return x, y
}

func (p projection) inverse(x, y float64) orb.Point {
	lat := p.origin.Lat() + y/earthRadiusM*180/math.Pi
	lng := p.origin.Lon()
	if p.cosLat > 0 {
		lng += x / (earthRadiusM * p.cosLat) * 180 / math.Pi
	}

	return orb.Point{normalizeLng(lng), lat}
}

func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}

	return lng
}

func validPoint(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return p.Lat() >= -90 && p.Lat() <= 90
}

// Model is the immutable set of boundaries the geofence evaluator measures against.
type Model struct {
	boundaries []*Boundary
}

// New groups points by boundary code and orders each group by sequence.
// A group is a polygon when any of its points is marked closed or its first and last
// points coincide and at least three distinct vertices remain. Points with a
// non-finite coordinate are dropped.
func New(points []*entity.BorderPoint) *Model {
	groups := make(map[string][]*entity.BorderPoint)
	codes := make([]string, 0)
	for _, p := range points {
		if p == nil {
			continue
		}
		if _, ok := groups[p.BoundaryCode]; !ok {
			codes = append(codes, p.BoundaryCode)
		}
		groups[p.BoundaryCode] = append(groups[p.BoundaryCode], p)
	}
	sort.Strings(codes)

	model := &Model{boundaries: make([]*Boundary, 0, len(codes))}
	for _, code := range codes {
		model.boundaries = append(model.boundaries, buildBoundary(code, groups[code]))
	}

	return model
}

func buildBoundary(code string, group []*entity.BorderPoint) *Boundary {
	sort.SliceStable(group, func(i, j int) bool { return group[i].Sequence < group[j].Sequence })

	closed := false
	pts := make([]orb.Point, 0, len(group))
	for _, p := range group {
		pt := orb.Point{p.Longitude, p.Latitude}
		if !validPoint(pt) {
			continue
		}
		closed = closed || p.Closed
		pts = append(pts, pt)
	}

	if len(pts) > 1 && pts[0].Equal(pts[len(pts)-1]) {
		closed = true
		pts = pts[:len(pts)-1]
	}

	kind := Polyline
	if closed && len(pts) >= 3 {
		kind = Polygon
	}

	return &Boundary{Code: code, Kind: kind, Points: pts}
}

// Boundaries returns every boundary, defined or not, ordered by code.
func (m *Model) Boundaries() []*Boundary {
	return m.boundaries
}

// Boundary returns the boundary with the given code.
func (m *Model) Boundary(code string) (*Boundary, bool) {
	for _, b := range m.boundaries {
		if b.Code == code {
			return b, true
		}
	}

	return nil, false
}

// DistanceToBoundary returns the measurement against the closest defined boundary.
// ok is false when no boundary is defined or the position is unusable.
func (m *Model) DistanceToBoundary(position orb.Point) (Measurement, bool) {
	var best Measurement
	found := false
	for _, b := range m.boundaries {
		meas, ok := b.DistanceToBoundary(position)
		if !ok {
			continue
		}
		if !found || math.Abs(meas.DistanceMeters) < math.Abs(best.DistanceMeters) {
			best = meas
			found = true
		}
	}

	return best, found
}

// NearestSegment returns the closest segment over all defined boundaries.
func (m *Model) NearestSegment(position orb.Point) (string, Segment, bool) {
	meas, ok := m.DistanceToBoundary(position)
	if !ok {
		return "", Segment{}, false
	}

	return meas.BoundaryCode, meas.Segment, true
}
