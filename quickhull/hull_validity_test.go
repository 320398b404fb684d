package quickhull

// This contains no actual tests. It is just a helper for checking hull
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull result is valid for its source. The rules are:
// 1. No Index appears twice.
// 2. Every hull Index refers to a point the source actually yielded, unmoved.
// 3. The hull polygon is convex and counterclockwise.
// 4. Every input point lies inside or on the hull (within Tolerance).
func AssertValidHull(t *testing.T, src Source, hull []Index) {
	t.Helper()

	input := make(map[int]Point)
	src.Iterate(func(pos int, pt Point) {
		if !isReal(pt) {
			return
		}
		input[pos] = pt
	})

	seen := make(map[int]struct{})
	pts := make([]Point, len(hull))
	for i, ix := range hull {
		_, dup := seen[ix.pos]
		require.False(t, dup, "Index %d appears twice in the hull", ix.pos)
		seen[ix.pos] = struct{}{}

		iterated, ok := input[ix.pos]
		require.True(t, ok, "hull Index %d was never yielded by the source", ix.pos)
		require.Equal(t, iterated, src.Get(ix), "source moved the point at %d", ix.pos)
		pts[i] = iterated
	}

	if len(input) == 0 {
		require.Empty(t, hull, "hull of an empty source must be empty")
		return
	}

	switch len(hull) {
	case 0:
		t.Fatal("non-empty source produced an empty hull")
	case 1:
		for pos, pt := range input {
			require.True(t, SamePoint(pt, pts[0]), "point %d not covered by single-vertex hull", pos)
		}
	case 2:
		// Degenerate hull: all points must be on the segment between the two
		// vertices, which are themselves the extremes.
		a, b := pts[0], pts[1]
		for pos, pt := range input {
			require.LessOrEqual(t, math.Abs(Cross(a, b, pt)), Tolerance,
				"point %d is off the degenerate hull's line", pos)
			require.LessOrEqual(t, math.Min(a.X, b.X)-Tolerance, pt.X, "point %d beyond segment", pos)
			require.GreaterOrEqual(t, math.Max(a.X, b.X)+Tolerance, pt.X, "point %d beyond segment", pos)
			require.LessOrEqual(t, math.Min(a.Y, b.Y)-Tolerance, pt.Y, "point %d beyond segment", pos)
			require.GreaterOrEqual(t, math.Max(a.Y, b.Y)+Tolerance, pt.Y, "point %d beyond segment", pos)
		}
	default:
		// Convex and counterclockwise: every turn is a left turn
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			c := pts[(i+2)%len(pts)]
			require.Greater(t, Cross(a, b, c), -Tolerance,
				"hull is not convex CCW at vertex %d", (i+1)%len(pts))
		}
		// Containment: no input point is strictly right of any edge
		for pos, pt := range input {
			for i := range pts {
				a := pts[i]
				b := pts[(i+1)%len(pts)]
				require.GreaterOrEqual(t, Cross(a, b, pt), -Tolerance,
					"point %d lies outside hull edge %d→%d", pos, i, (i+1)%len(pts))
			}
		}
	}
}

// hullPointSet collects the coordinate pairs of a hull for set comparisons
// that ignore winding start and handle identity.
func hullPointSet(src Source, hull []Index) map[Point]struct{} {
	set := make(map[Point]struct{})
	for _, ix := range hull {
		set[src.Get(ix)] = struct{}{}
	}
	return set
}
