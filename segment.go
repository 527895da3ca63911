package planar

import (
	"fmt"
)

// segmentData is the mutable payload of a segment. Handles indirect to it so
// that the sweep can exchange the payload of two crossing segments without
// touching the status tree.
type segmentData struct {
	p0, p1 Point // endpoints, p0.X <= p1.X
	dir    Point // p1 - p0

	specialY  float64 // y reported at the sweep line while vertical
	neighbors []int   // numbers of segments sharing an intersection
	group     int
	index     int // slot of the handle currently holding this data
	number    int // stable identity, assigned at construction
}

func newSegmentData(x1, y1, x2, y2 float64, number int) *segmentData {
	d := &segmentData{number: number, index: number, group: -1}
	if x1 <= x2 {
		d.p0 = Point{x1, y1}
		d.p1 = Point{x2, y2}
	} else {
		d.p0 = Point{x2, y2}
		d.p1 = Point{x1, y1}
	}
	d.dir = d.p1.Sub(d.p0)
	d.specialY = d.p0.Y
	return d
}

func (d *segmentData) vertical() bool {
	return equal(d.dir.X, 0.0)
}

// degenerate is true when both endpoints coincide under Epsilon. Such a
// segment behaves as a point and never intersects anything.
func (d *segmentData) degenerate() bool {
	return d.p0.Equals(d.p1)
}

// yAt returns the y-coordinate of the supporting line at abscissa x. Only
// valid for non-vertical segments.
func (d *segmentData) yAt(x float64) float64 {
	return d.p0.Y + (x-d.p0.X)*d.dir.Y/d.dir.X
}

// sweepY returns the y-coordinate at the sweep line. A vertical segment
// reports its special y, maintained by the sweep at every crossing.
func (d *segmentData) sweepY(x float64) float64 {
	if d.vertical() {
		return d.specialY
	}
	return d.yAt(x)
}

// intersection reports whether d and o share a point. Collinear overlapping
// segments intersect at the leftmost common point.
func (d *segmentData) intersection(o *segmentData) (Point, bool) {
	if d.degenerate() || o.degenerate() {
		return Point{}, false
	}

	det := -o.dir.X*d.dir.Y + d.dir.X*o.dir.Y
	if det == 0.0 {
		a := o.p0.Sub(d.p0)
		if a.PerpDot(d.dir) != 0.0 {
			// parallel but not collinear
			return Point{}, false
		}
		if o.p0.X <= d.p0.X && d.p0.X <= o.p1.X {
			return d.p0, true
		}
		if d.p0.X <= o.p0.X && o.p0.X <= d.p1.X {
			return o.p0, true
		}
		return Point{}, false
	}

	u := (-d.dir.Y*(d.p0.X-o.p0.X) + d.dir.X*(d.p0.Y-o.p0.Y)) / det
	t := (o.dir.X*(d.p0.Y-o.p0.Y) - o.dir.Y*(d.p0.X-o.p0.X)) / det
	if 0.0 <= u && u <= 1.0 && 0.0 <= t && t <= 1.0 {
		return Point{d.p0.X + t*d.dir.X, d.p0.Y + t*d.dir.Y}, true
	}
	return Point{}, false
}

// Segment is a handle to one segment of a Plane. A handle keeps its slot for
// the lifetime of a run; the sweep may exchange the data under two handles
// when their segments cross.
type Segment struct {
	d *segmentData
}

// Number returns the stable identity of the segment, assigned at construction.
func (s *Segment) Number() int {
	return s.d.number
}

// Group returns the component label, or -1 before labeling.
func (s *Segment) Group() int {
	return s.d.group
}

// Start returns the left endpoint.
func (s *Segment) Start() Point {
	return s.d.p0
}

// End returns the right endpoint.
func (s *Segment) End() Point {
	return s.d.p1
}

// Neighbors returns the numbers of all segments this segment crosses.
func (s *Segment) Neighbors() []int {
	return s.d.neighbors
}

// Intersects reports whether s and o share a point, and where.
func (s *Segment) Intersects(o *Segment) (Point, bool) {
	return s.d.intersection(o.d)
}

func (s *Segment) connect(o *Segment) {
	s.d.neighbors = append(s.d.neighbors, o.d.number)
}

// swap exchanges the payload of two handles. The slots of the handles do not
// change, so the status tree keeps both entries in swapped roles.
func (s *Segment) swap(o *Segment) {
	i, j := s.d.index, o.d.index
	s.d, o.d = o.d, s.d
	s.d.index, o.d.index = i, j
}

func (s *Segment) String() string {
	return fmt.Sprintf("S%d(%v−%v)", s.d.number, s.d.p0, s.d.p1)
}
