package planar

// labelTraversal walks the neighbor relation breadth-first and assigns dense
// group ids in discovery order.
func labelTraversal(pl *Plane) {
	visited := make([]bool, len(pl.arena))
	group := -1
	for _, s := range pl.segs {
		d := s.d
		if visited[d.number] {
			continue
		}
		group++
		visited[d.number] = true
		d.group = group
		queue := []*segmentData{d}
		for len(queue) > 0 {
			d, queue = queue[0], queue[1:]
			for _, m := range d.neighbors {
				if visited[m] {
					continue
				}
				visited[m] = true
				n := pl.arena[m]
				n.group = group
				queue = append(queue, n)
			}
		}
	}
}

// labelUnionFind merges the neighbor relation into a DisjointSet and labels
// every segment with its representative. Group ids are representative numbers
// rather than dense, but the partition matches labelTraversal.
func labelUnionFind(pl *Plane) {
	dset := NewDisjointSet(len(pl.arena))
	for _, d := range pl.arena {
		for _, m := range d.neighbors {
			dset.Union(d.number, m)
		}
	}
	groups := dset.Flatten()
	for _, d := range pl.arena {
		d.group = groups[d.number]
	}
}
