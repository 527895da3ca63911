package planar

import (
	"sort"
)

// allPairs tests every pair of segments. Quadratic, but immune to the
// coincidences that trip the sweep.
func allPairs(pl *Plane) error {
	for i := 0; i < len(pl.segs); i++ {
		for j := i + 1; j < len(pl.segs); j++ {
			if z, ok := pl.segs[i].Intersects(pl.segs[j]); ok {
				pl.addIntersection(z, pl.segs[i], pl.segs[j])
				pl.segs[i].connect(pl.segs[j])
				pl.segs[j].connect(pl.segs[i])
			}
		}
	}
	return nil
}

// sortedAllPairs walks the endpoint events left to right and tests each
// beginning segment against the open ones. Still quadratic in the worst case
// but skips pairs that never share an x-range.
func sortedAllPairs(pl *Plane) error {
	events := make([]event, 0, 2*len(pl.segs))
	for _, s := range pl.segs {
		events = append(events, beginEvent(s), endEvent(s))
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Less(events[j])
	})

	open := []int{}
	for _, e := range events {
		s := pl.segs[e.owner.index]
		if e.kind == eventBegin {
			for _, j := range open {
				o := pl.segs[j]
				if z, ok := s.Intersects(o); ok {
					pl.addIntersection(z, s, o)
					s.connect(o)
					o.connect(s)
				}
			}
			open = append(open, e.owner.index)
		} else {
			for i, j := range open {
				if j == e.owner.index {
					open = append(open[:i], open[i+1:]...)
					break
				}
			}
		}
	}
	return nil
}
