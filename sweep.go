package planar

// sweeper runs one left-to-right plane sweep over the segments of a Plane.
// The sweep abscissa lives on the sweeper, and the status comparator closes
// over it, so concurrent planes never share sweep state.
type sweeper struct {
	pl     *Plane
	x      float64
	queue  *eventQueue
	status *statusTree
}

func newSweeper(pl *Plane) *sweeper {
	sw := &sweeper{pl: pl, queue: newEventQueue()}
	sw.status = newStatusTree(sw.compare)
	return sw
}

// compare orders two segments by their y-coordinate at the sweep line. On an
// ε-tie a vertical segment sorts above a non-vertical one, and two
// non-verticals are re-probed at a's begin abscissa, where they were still
// apart. Two handles on the same slot are the same segment.
func (sw *sweeper) compare(a, b *Segment) int {
	if a.d.index == b.d.index {
		return 0
	}
	ya, yb := a.d.sweepY(sw.x), b.d.sweepY(sw.x)
	if equal(ya, yb) {
		if a.d.vertical() {
			if b.d.vertical() {
				return 0
			}
			return 1
		}
		if b.d.vertical() {
			return -1
		}
		ya, yb = a.d.yAt(a.d.p0.X), b.d.yAt(a.d.p0.X)
	}
	if ya < yb {
		return -1
	}
	if yb < ya {
		return 1
	}
	return 0
}

// run performs the sweep. A non-nil error is always ErrPrecision: the input
// was too tangled for the tolerance and the caller must discard the partial
// result.
func (sw *sweeper) run() error {
	for _, s := range sw.pl.segs {
		sw.queue.insert(beginEvent(s))
		sw.queue.insert(endEvent(s))
	}
	for !sw.queue.empty() {
		e := sw.queue.pop()
		sw.x = e.X
		var err error
		switch e.kind {
		case eventBegin:
			err = sw.begin(e)
		case eventEnd:
			err = sw.end(e)
		case eventCross:
			err = sw.cross(e)
		}
		if err != nil {
			return err
		}
	}
	if !sw.status.Empty() {
		// a segment entered the status but its end event got lost
		return ErrPrecision
	}
	return nil
}

func (sw *sweeper) begin(e event) error {
	seg := sw.pl.segs[e.owner.index]
	n, _ := sw.status.Insert(seg)
	prev, next := n.Prev(), n.Next()

	// the pair split by the new segment is no longer adjacent
	if prev != nil && next != nil {
		if z, ok := prev.seg.Intersects(next.seg); ok {
			sw.queue.erase(crossEvent(prev.seg, next.seg, z))
		}
	}
	if prev != nil {
		if z, ok := prev.seg.Intersects(n.seg); ok {
			if !sw.queue.insert(crossEvent(prev.seg, n.seg, z)) {
				return ErrPrecision
			}
		}
	}
	if next != nil {
		if z, ok := n.seg.Intersects(next.seg); ok {
			if !sw.queue.insert(crossEvent(n.seg, next.seg, z)) {
				return ErrPrecision
			}
		}
	}
	return nil
}

func (sw *sweeper) end(e event) error {
	seg := sw.pl.segs[e.owner.index]
	n, _ := sw.status.Insert(seg)
	prev, next := n.Prev(), n.Next()

	// the neighbors become adjacent; crossings strictly left of the sweep
	// line have already been handled
	if prev != nil && next != nil {
		if z, ok := prev.seg.Intersects(next.seg); ok && !less(z.X, e.X) {
			if !sw.queue.insert(crossEvent(prev.seg, next.seg, z)) {
				return ErrPrecision
			}
		}
	}
	sw.status.Remove(n)
	return nil
}

func (sw *sweeper) cross(e event) error {
	s1 := sw.pl.segs[e.owner.index]
	s2 := sw.pl.segs[e.other.index]
	s1.connect(s2)
	s2.connect(s1)

	n1 := sw.status.Find(s1)
	n2 := sw.status.Find(s2)
	if n1 == nil || n2 == nil {
		return ErrPrecision
	}
	prev, next := n1.Prev(), n2.Next()

	z, _ := s1.Intersects(s2)
	sw.pl.addIntersection(z, s1, s2)

	if next != nil {
		if q, ok := s2.Intersects(next.seg); ok {
			sw.queue.erase(crossEvent(s2, next.seg, q))
		}
	}
	if prev != nil {
		if q, ok := prev.seg.Intersects(s1); ok {
			sw.queue.erase(crossEvent(prev.seg, s1, q))
		}
	}
	if next != nil {
		if q, ok := s1.Intersects(next.seg); ok && !less(q.X, e.X) {
			if !sw.queue.insert(crossEvent(s1, next.seg, q)) {
				return ErrPrecision
			}
		}
	}
	if prev != nil {
		if q, ok := prev.seg.Intersects(s2); ok && !less(q.X, e.X) {
			if !sw.queue.insert(crossEvent(prev.seg, s2, q)) {
				return ErrPrecision
			}
		}
	}

	// a vertical segment takes the crossing height with it up the sweep line
	if s1.d.vertical() {
		s1.d.specialY = s2.d.sweepY(sw.x)
	}
	if s2.d.vertical() {
		s2.d.specialY = s1.d.sweepY(sw.x)
	}

	s1.swap(s2)
	return nil
}
