package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func seg(x1, y1, x2, y2 float64, number int) *Segment {
	return &Segment{newSegmentData(x1, y1, x2, y2, number)}
}

func TestEventOrder(t *testing.T) {
	a := seg(0, 0, 10, 10, 0)
	b := seg(2, 8, 12, 2, 1)

	// left to right, then bottom to top
	test.That(t, beginEvent(a).Less(beginEvent(b)))
	test.That(t, !beginEvent(b).Less(beginEvent(a)))
	test.That(t, beginEvent(a).Less(endEvent(a)))

	// same owner at one point unties by kind
	v := seg(5, 0, 5, 10, 2)
	test.That(t, beginEvent(v).Less(endEvent(v)))
	test.That(t, !endEvent(v).Less(beginEvent(v)))

	// a crossing sorts between the begin and end of its segments
	z := Point{5, 5}
	test.That(t, beginEvent(a).Less(crossEvent(a, b, z)))
	test.That(t, crossEvent(a, b, z).Less(endEvent(a)))
	test.That(t, crossEvent(a, b, z).Less(endEvent(b)))

	// an event is never smaller than itself
	test.That(t, !crossEvent(a, b, z).Less(crossEvent(a, b, z)))
}

func TestEventQueue(t *testing.T) {
	a := seg(0, 0, 10, 10, 0)
	b := seg(0, 10, 10, 0, 1)
	z := Point{5, 5}

	q := newEventQueue()
	test.That(t, q.empty())
	test.That(t, q.insert(beginEvent(a)))
	test.That(t, q.insert(endEvent(a)))
	test.That(t, q.insert(crossEvent(a, b, z)))

	// duplicates are absorbed
	test.That(t, !q.insert(crossEvent(a, b, z)))

	e := q.pop()
	test.T(t, e.kind, eventBegin)
	test.T(t, e.owner.number, 0)

	q.erase(crossEvent(a, b, z))
	e = q.pop()
	test.T(t, e.kind, eventEnd)
	test.That(t, q.empty())
}

func TestEventQueueCoincidentEndpoints(t *testing.T) {
	// begin events of different owners at the same point collapse
	a := seg(0, 0, 10, 10, 0)
	b := seg(0, 0, 10, -10, 1)

	q := newEventQueue()
	test.That(t, q.insert(beginEvent(a)))
	test.That(t, !q.insert(beginEvent(b)))
}
