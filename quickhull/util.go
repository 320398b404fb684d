package quickhull

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, near-collinear points could flip between the two
// sides of a baseline and show up as absurdly thin hull notches.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Cross is the z component of (b-a) × (c-a). Positive means c is strictly to
// the left of the directed line a→b, negative strictly to the right, and
// within Tolerance of zero is treated as on the line.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SamePoint reports coordinate coincidence within Tolerance. Two coincident
// points at different positions are still distinct handles, but only one of
// them can be a hull vertex.
func SamePoint(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Points containing NaN or infinite coordinates are ignored by the hull
// computation rather than poisoning every orientation test they touch.
func isReal(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
