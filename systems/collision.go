package systems

// Circle is a collision proxy: center and radius.
type Circle struct {
	X, Y, R float32
}

// Hit pairs a bullet index with the asteroid index it destroyed.
type Hit struct {
	Bullet   int
	Asteroid int
}

// CirclesOverlap reports whether two circles intersect or touch.
func CirclesOverlap(a, b Circle) bool {
	r := a.R + b.R
	return distanceSq(a.X, a.Y, b.X, b.Y) <= r*r
}

// ResolveBulletHits tests every bullet against every asteroid and
// returns the hits. Tie-break: a bullet destroys at most the first
// overlapping asteroid, and an asteroid is consumed by at most one
// bullet per call. O(B*A), fine for arcade populations.
func ResolveBulletHits(bullets, asteroids []Circle) []Hit {
	var hits []Hit
	taken := make([]bool, len(asteroids))

	for bi := range bullets {
		for ai := range asteroids {
			if taken[ai] {
				continue
			}
			if CirclesOverlap(bullets[bi], asteroids[ai]) {
				taken[ai] = true
				hits = append(hits, Hit{Bullet: bi, Asteroid: ai})
				break
			}
		}
	}
	return hits
}
