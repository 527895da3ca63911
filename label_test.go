package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

// partition maps every group label to the numbers of its members in slot
// order: segments share a list exactly when they share a group.
func partition(pl *Plane) map[int][]int {
	part := map[int][]int{}
	pl.ForEachSegment(func(s *Segment) {
		part[s.Group()] = append(part[s.Group()], s.Number())
	})
	return part
}

func samePartition(t *testing.T, a, b map[int][]int) {
	test.T(t, len(a), len(b))
	for _, members := range a {
		found := false
		for _, others := range b {
			if len(members) == len(others) {
				same := true
				for i := range members {
					if members[i] != others[i] {
						same = false
						break
					}
				}
				if same {
					found = true
					break
				}
			}
		}
		test.That(t, found)
	}
}

func chainPlane() *Plane {
	pl := New()
	pl.AddSegment(0, 0, 10, 10)  // 0 crosses 1
	pl.AddSegment(0, 8, 10, 2)   // 1 crosses 0 and 2
	pl.AddSegment(8, 0, 9, 20)   // 2 crosses 0 and 1
	pl.AddSegment(20, 0, 30, 10) // 3 alone
	pl.AddSegment(20, 9, 30, 1)  // 4 crosses 3
	pl.AddSegment(50, 0, 60, 0)  // 5 alone
	return pl
}

func TestLabelTraversal(t *testing.T) {
	pl := chainPlane()
	test.Error(t, pl.Solve())
	test.T(t, pl.Components(), 3)

	// ids are dense and assigned in slot order
	part := partition(pl)
	for g := 0; g < 3; g++ {
		test.That(t, 0 < len(part[g]))
	}
}

func TestLabelersAgree(t *testing.T) {
	a := chainPlane()
	test.Error(t, a.Solve())

	b := chainPlane()
	b.SetComponentAlgorithm(UnionFind)
	test.Error(t, b.Solve())

	test.T(t, a.Components(), b.Components())
	samePartition(t, partition(a), partition(b))
}
