package planar

// DisjointSet is a union-find structure over the integers 0..n-1 with union
// by rank and path compression.
type DisjointSet struct {
	parents []int
	ranks   []int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parents: make([]int, n),
		ranks:   make([]int, n),
	}
	for i := range d.parents {
		d.parents[i] = i
	}
	return d
}

// MakeSet resets x to a singleton.
func (d *DisjointSet) MakeSet(x int) {
	d.parents[x] = x
	d.ranks[x] = 0
}

// Find returns the representative of x, compressing the path to it.
func (d *DisjointSet) Find(x int) int {
	if d.parents[x] != x {
		d.parents[x] = d.Find(d.parents[x])
	}
	return d.parents[x]
}

// Union merges the sets of x and y. The shallower tree is attached below the
// deeper one.
func (d *DisjointSet) Union(x, y int) {
	xRoot := d.Find(x)
	yRoot := d.Find(y)
	if xRoot == yRoot {
		return
	}
	switch {
	case d.ranks[xRoot] < d.ranks[yRoot]:
		d.parents[xRoot] = yRoot
	case d.ranks[xRoot] > d.ranks[yRoot]:
		d.parents[yRoot] = xRoot
	default:
		d.parents[yRoot] = xRoot
		d.ranks[xRoot]++
	}
}

// Flatten connects every element directly to its representative and returns
// the parent slice. The slice is the live backing store, not a copy.
func (d *DisjointSet) Flatten() []int {
	for i := range d.parents {
		d.Find(i)
	}
	return d.parents
}
