package planar

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("planar")

// ErrPrecision is returned by Solve when the input carries a coincidence the
// tolerance cannot separate. The plane holds no results afterwards.
var ErrPrecision = errors.New("not enough precision for this input")

// IntersectionAlgorithm selects how crossings are found.
type IntersectionAlgorithm int

const (
	BentleyOttmann IntersectionAlgorithm = iota
	AllPairs
	SortedAllPairs
)

func (a IntersectionAlgorithm) String() string {
	switch a {
	case BentleyOttmann:
		return "bentley-ottmann"
	case AllPairs:
		return "all-pairs"
	case SortedAllPairs:
		return "sorted-all-pairs"
	}
	return "?"
}

// ParseIntersectionAlgorithm maps a name to its algorithm.
func ParseIntersectionAlgorithm(s string) (IntersectionAlgorithm, error) {
	switch s {
	case "bentley-ottmann", "sweep":
		return BentleyOttmann, nil
	case "all-pairs", "naive":
		return AllPairs, nil
	case "sorted-all-pairs", "sorted":
		return SortedAllPairs, nil
	}
	return 0, fmt.Errorf("unknown intersection algorithm %q", s)
}

// ComponentAlgorithm selects how connected components are labeled.
type ComponentAlgorithm int

const (
	Traversal ComponentAlgorithm = iota
	UnionFind
)

func (a ComponentAlgorithm) String() string {
	switch a {
	case Traversal:
		return "traversal"
	case UnionFind:
		return "union-find"
	}
	return "?"
}

// ParseComponentAlgorithm maps a name to its algorithm.
func ParseComponentAlgorithm(s string) (ComponentAlgorithm, error) {
	switch s {
	case "traversal", "bfs":
		return Traversal, nil
	case "union-find", "disjoint":
		return UnionFind, nil
	}
	return 0, fmt.Errorf("unknown component algorithm %q", s)
}

// Intersection is one recorded crossing between segments A and B.
type Intersection struct {
	Point
	A, B int
}

// Plane holds a set of segments and solves them for pairwise intersections
// and connected components.
type Plane struct {
	segs  []*Segment
	arena []*segmentData // indexed by segment number

	intersections []Intersection

	min, max        float64
	intersectionAlg IntersectionAlgorithm
	componentAlg    ComponentAlgorithm
	rnd             *rand.Rand
}

// New returns an empty plane with a [0,1000]² bounding box, solving with
// Bentley–Ottmann and labeling by traversal.
func New() *Plane {
	return &Plane{
		min: 0.0,
		max: 1000.0,
		rnd: rand.New(rand.NewSource(1)),
	}
}

// AddSegment appends the segment from (x1,y1) to (x2,y2).
func (pl *Plane) AddSegment(x1, y1, x2, y2 float64) *Segment {
	d := newSegmentData(x1, y1, x2, y2, len(pl.arena))
	pl.arena = append(pl.arena, d)
	s := &Segment{d}
	pl.segs = append(pl.segs, s)
	return s
}

// Add appends the segment from p to q.
func (pl *Plane) Add(p, q Point) *Segment {
	return pl.AddSegment(p.X, p.Y, q.X, q.Y)
}

// Len returns the number of segments.
func (pl *Plane) Len() int {
	return len(pl.segs)
}

// SetIntersectionAlgorithm selects the crossing solver for the next Solve.
func (pl *Plane) SetIntersectionAlgorithm(a IntersectionAlgorithm) {
	pl.intersectionAlg = a
}

// SetComponentAlgorithm selects the labeler for the next Solve.
func (pl *Plane) SetComponentAlgorithm(a ComponentAlgorithm) {
	pl.componentAlg = a
}

// SetMin sets the lower coordinate bound for generated segments.
func (pl *Plane) SetMin(m float64) { pl.min = m }

// SetMax sets the upper coordinate bound for generated segments.
func (pl *Plane) SetMax(m float64) { pl.max = m }

// Min returns the lower coordinate bound for generated segments.
func (pl *Plane) Min() float64 { return pl.min }

// Max returns the upper coordinate bound for generated segments.
func (pl *Plane) Max() float64 { return pl.max }

// Seed makes the following generator calls deterministic.
func (pl *Plane) Seed(seed int64) {
	pl.rnd = rand.New(rand.NewSource(seed))
}

// reset clears all derived state so that Solve can run on a clean slate.
func (pl *Plane) reset() {
	pl.intersections = pl.intersections[:0]
	for _, d := range pl.arena {
		d.neighbors = nil
		d.group = -1
		d.specialY = d.p0.Y
	}
}

func (pl *Plane) addIntersection(z Point, a, b *Segment) {
	pl.intersections = append(pl.intersections, Intersection{z, a.Number(), b.Number()})
}

// Solve finds all pairwise intersections and labels connected components.
// On ErrPrecision the plane is left without results; switching to AllPairs
// or growing Epsilon are the ways out.
func (pl *Plane) Solve() error {
	pl.reset()

	var err error
	switch pl.intersectionAlg {
	case AllPairs:
		err = allPairs(pl)
	case SortedAllPairs:
		err = sortedAllPairs(pl)
	default:
		err = newSweeper(pl).run()
	}
	if err != nil {
		log.Errorf("%v segments with %v: %v", len(pl.segs), pl.intersectionAlg, err)
		pl.reset()
		return err
	}

	switch pl.componentAlg {
	case UnionFind:
		labelUnionFind(pl)
	default:
		labelTraversal(pl)
	}
	return nil
}

// SolveTimed runs Solve and logs the wall time taken.
func (pl *Plane) SolveTimed() error {
	start := time.Now()
	if err := pl.Solve(); err != nil {
		return err
	}
	log.Infof("solved %d segments, %d intersections in %v",
		len(pl.segs), len(pl.intersections), time.Since(start))
	return nil
}

// ForEachSegment calls f for every segment in insertion order of the slots.
func (pl *Plane) ForEachSegment(f func(*Segment)) {
	for _, s := range pl.segs {
		f(s)
	}
}

// ForEachIntersection calls f for every recorded crossing.
func (pl *Plane) ForEachIntersection(f func(Intersection)) {
	for _, z := range pl.intersections {
		f(z)
	}
}

// Intersections returns the recorded crossings of the last Solve.
func (pl *Plane) Intersections() []Intersection {
	return pl.intersections
}

// Components returns the number of distinct groups, or 0 before a
// successful Solve.
func (pl *Plane) Components() int {
	groups := map[int]bool{}
	for _, d := range pl.arena {
		if d.group >= 0 {
			groups[d.group] = true
		}
	}
	return len(groups)
}
