package planar

// GenerateSegments replaces the plane's contents with n random segments. The
// first endpoint is uniform in the bounding box; the second is shifted by at
// most maxLen along each axis, redrawing shifts that leave the box.
func (pl *Plane) GenerateSegments(n int, maxLen float64) {
	pl.segs = nil
	pl.arena = nil
	pl.intersections = nil
	for i := 0; i < n; i++ {
		x1 := pl.uniform(pl.min, pl.max)
		y1 := pl.uniform(pl.min, pl.max)
		var dx, dy float64
		for {
			dx = pl.uniform(-maxLen, maxLen)
			dy = pl.uniform(-maxLen, maxLen)
			if pl.min <= x1+dx && x1+dx <= pl.max && pl.min <= y1+dy && y1+dy <= pl.max {
				break
			}
		}
		pl.AddSegment(x1, y1, x1+dx, y1+dy)
	}
}

// GenerateParallel adds a copy of s shifted by a random offset of at most
// rng along each axis. Useful for stressing parallel and collinear cases.
func (pl *Plane) GenerateParallel(s *Segment, rng float64) *Segment {
	dx := pl.uniform(-rng, rng)
	dy := pl.uniform(-rng, rng)
	return pl.AddSegment(s.d.p0.X+dx, s.d.p0.Y+dy, s.d.p1.X+dx, s.d.p1.Y+dy)
}

// GenerateFromPoint adds a segment starting on a random point of s and ending
// near s's right endpoint, shifted by at most rng along each axis.
func (pl *Plane) GenerateFromPoint(s *Segment, rng float64) *Segment {
	t := pl.rnd.Float64()
	x := s.d.p0.X + t*s.d.dir.X
	y := s.d.p0.Y + t*s.d.dir.Y
	return pl.AddSegment(x, y, s.d.p1.X+pl.uniform(-rng, rng), s.d.p1.Y+pl.uniform(-rng, rng))
}

func (pl *Plane) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*pl.rnd.Float64()
}
