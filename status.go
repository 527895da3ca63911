package planar

import (
	"strings"
	"sync"
)

// statusNode is a slot in the status tree. The tree rebalances by relinking
// nodes, never by moving segments between them, so the sweep can hold a node
// across later insertions and removals. Every node is threaded into a
// neighbor list that mirrors the tree order.
type statusNode struct {
	parent     *statusNode
	child      [2]*statusNode // 0 below, 1 above
	prev, next *statusNode
	height     int

	seg *Segment
}

// Prev returns the node directly below, or nil at the bottom.
func (n *statusNode) Prev() *statusNode {
	return n.prev
}

// Next returns the node directly above, or nil at the top.
func (n *statusNode) Next() *statusNode {
	return n.next
}

func (n *statusNode) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

// tilt is positive when the upper subtree outgrows the lower one.
func (n *statusNode) tilt() int {
	return n.child[1].h() - n.child[0].h()
}

func (n *statusNode) lift() {
	n.height = n.child[0].h()
	if n.height < n.child[1].h() {
		n.height = n.child[1].h()
	}
	n.height++
}

// statusTree is the sweep status: the segments currently intersecting the
// sweep line, ordered by their y-coordinate at the sweep abscissa. The
// comparator belongs to the running sweep, which knows the abscissa.
type statusTree struct {
	root    *statusNode
	head    *statusNode // bottom of the neighbor list
	pool    *sync.Pool
	compare func(a, b *Segment) int
}

func newStatusTree(compare func(a, b *Segment) int) *statusTree {
	return &statusTree{
		pool:    &sync.Pool{New: func() any { return &statusNode{} }},
		compare: compare,
	}
}

func (t *statusTree) take(seg *Segment) *statusNode {
	n := t.pool.Get().(*statusNode)
	*n = statusNode{seg: seg, height: 1}
	return n
}

func (t *statusTree) give(n *statusNode) {
	*n = statusNode{}
	t.pool.Put(n)
}

// graft puts c in the tree position of n. c may be nil.
func (t *statusTree) graft(n, c *statusNode) {
	p := n.parent
	if p == nil {
		t.root = c
	} else if p.child[0] == n {
		p.child[0] = c
	} else {
		p.child[1] = c
	}
	if c != nil {
		c.parent = p
	}
}

// rotate lifts the child on side s into n's place and returns it.
func (t *statusTree) rotate(n *statusNode, s int) *statusNode {
	c := n.child[s]
	n.child[s] = c.child[1-s]
	if n.child[s] != nil {
		n.child[s].parent = n
	}
	t.graft(n, c)
	c.child[1-s] = n
	n.parent = c
	n.lift()
	c.lift()
	return c
}

// settle restores heights and the AVL shape from n up to the root.
func (t *statusTree) settle(n *statusNode) {
	for n != nil {
		n.lift()
		if d := n.tilt(); d < -1 || 1 < d {
			s := 0
			if 0 < d {
				s = 1
			}
			if ct := n.child[s].tilt(); (s == 0) == (0 < ct) && ct != 0 {
				// the heavy child leans inward, straighten it first
				t.rotate(n.child[s], 1-s)
			}
			n = t.rotate(n, s)
		}
		n = n.parent
	}
}

func (t *statusTree) String() string {
	parts := []string{}
	for n := t.head; n != nil; n = n.next {
		parts = append(parts, n.seg.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// First returns the bottom-most node, or nil when the status is empty.
func (t *statusTree) First() *statusNode {
	return t.head
}

func (t *statusTree) Empty() bool {
	return t.root == nil
}

// Find returns the node whose segment compares equal to seg. May return nil.
func (t *statusTree) Find(seg *Segment) *statusNode {
	for n := t.root; n != nil; {
		cmp := t.compare(seg, n.seg)
		if cmp == 0 {
			return n
		}
		if cmp < 0 {
			n = n.child[0]
		} else {
			n = n.child[1]
		}
	}
	return nil
}

// Insert adds seg and returns its node. When an equal segment is already
// present its node is returned unchanged and inserted is false.
func (t *statusTree) Insert(seg *Segment) (*statusNode, bool) {
	var p *statusNode
	s := 0
	for n := t.root; n != nil; n = n.child[s] {
		cmp := t.compare(seg, n.seg)
		if cmp == 0 {
			return n, false
		}
		p = n
		s = 0
		if 0 < cmp {
			s = 1
		}
	}

	n := t.take(seg)
	n.parent = p
	if p == nil {
		t.root = n
		t.head = n
		return n, true
	}
	p.child[s] = n

	// the free slot under p sits directly next to p in the order
	if s == 0 {
		n.prev, n.next = p.prev, p
	} else {
		n.prev, n.next = p, p.next
	}
	if n.prev != nil {
		n.prev.next = n
	} else {
		t.head = n
	}
	if n.next != nil {
		n.next.prev = n
	}

	t.settle(p)
	return n, true
}

// Remove takes n out of the status. Every other node stays valid.
func (t *statusTree) Remove(n *statusNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		t.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}

	low := n.parent
	if n.child[0] != nil && n.child[1] != nil {
		// the node above n has no lower child; it moves into n's place
		o := n.next
		if o.parent != n {
			low = o.parent
			t.graft(o, o.child[1])
			o.child[1] = n.child[1]
			o.child[1].parent = o
		} else {
			low = o
		}
		t.graft(n, o)
		o.child[0] = n.child[0]
		o.child[0].parent = o
	} else {
		c := n.child[0]
		if c == nil {
			c = n.child[1]
		}
		t.graft(n, c)
	}
	t.settle(low)
	t.give(n)
}
