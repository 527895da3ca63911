package planar

import (
	"fmt"

	"github.com/google/btree"
)

type eventKind int

const (
	eventBegin eventKind = iota + 1
	eventCross
	eventEnd
)

func (k eventKind) String() string {
	switch k {
	case eventBegin:
		return "Begin"
	case eventCross:
		return "Cross"
	case eventEnd:
		return "End"
	}
	return "?"
}

// event is a point of interest of the sweep. Begin and End events carry only
// their owner; a Cross event also carries the other segment of the crossing.
type event struct {
	Point
	kind  eventKind
	owner *segmentData
	other *segmentData
}

func beginEvent(s *Segment) event {
	return event{Point: s.d.p0, kind: eventBegin, owner: s.d}
}

func endEvent(s *Segment) event {
	return event{Point: s.d.p1, kind: eventEnd, owner: s.d}
}

func crossEvent(s, o *Segment, p Point) event {
	return event{Point: p, kind: eventCross, owner: s.d, other: o.d}
}

func (e event) otherNumber() int {
	if e.other == nil {
		return -1
	}
	return e.other.number
}

// same reports strong equality: two events are the same element of the queue
// when they agree on owner identity, kind and crossing partner, regardless of
// their coordinates.
func (e event) same(f event) bool {
	return e.owner.number == f.owner.number && e.kind == f.kind &&
		e.otherNumber() == f.otherNumber()
}

// Less orders events by ascending x, then ascending y, both with tolerance.
// Events of one segment at one point are untied by kind so that a Begin is
// handled before a Cross and a Cross before an End.
func (e event) Less(than btree.Item) bool {
	f := than.(event)
	if e.same(f) {
		return false
	}
	if e.kind != f.kind {
		if e.owner.number == f.owner.number {
			return e.kind < f.kind
		}
		if e.kind == eventCross && e.other.index == f.owner.index {
			return e.kind < f.kind
		}
		if f.kind == eventCross && f.other.index == e.owner.index {
			return e.kind < f.kind
		}
	}
	if equal(e.X, f.X) {
		return less(e.Y, f.Y)
	}
	return less(e.X, f.X)
}

func (e event) String() string {
	if e.kind == eventCross {
		return fmt.Sprintf("%v S%d×S%d@%v", e.kind, e.owner.number, e.other.number, e.Point)
	}
	return fmt.Sprintf("%v S%d@%v", e.kind, e.owner.number, e.Point)
}

// eventQueue is an ordered set of events. An insert that compares equal to a
// queued event is absorbed: the queued event stays and insert reports false.
type eventQueue struct {
	tree *btree.BTree
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: btree.New(32)}
}

// insert adds e and reports whether it was not yet present.
func (q *eventQueue) insert(e event) bool {
	if q.tree.Has(e) {
		return false
	}
	q.tree.ReplaceOrInsert(e)
	return true
}

// erase removes the element equal to e, if present.
func (q *eventQueue) erase(e event) {
	q.tree.Delete(e)
}

// pop removes and returns the smallest event.
func (q *eventQueue) pop() event {
	return q.tree.DeleteMin().(event)
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}
