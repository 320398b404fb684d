package quickhull

// Point is a 2D point in cartesian coordinates. Points are plain values with
// no identity beyond their coordinates; a richer caller-owned point type is
// converted down to this pair at iteration time and never converted back.
type Point struct {
	X float64
	Y float64
}

// XY makes Point satisfy PointLike, so the built-in adapters can hold plain
// Points as well as caller types.
func (p Point) XY() (x, y float64) {
	return p.X, p.Y
}

// PointLike is the conversion hook for caller-owned point types. The
// conversion may be lossy; the hull is computed on the converted pair.
type PointLike interface {
	XY() (x, y float64)
}

// Index refers to a point's position within a Source. There is no exported
// constructor: the only Indexes in circulation are the ones ConvexHull wraps
// around positions yielded by the Source's own Iterate call, so an adapter's
// Get may index its backing storage without revalidating. The engine never
// derives an Index arithmetically. An Index is only meaningful for the Source
// and the ConvexHull call that produced it.
type Index struct {
	pos int
}

// Pos unwraps the underlying position. This is an escape hatch for callers
// that want raw positions (see also Positions); the engine itself never
// round-trips an Index through Pos.
func (ix Index) Pos() int {
	return ix.pos
}

// Positions unwraps a hull result into raw positions, for callers that want
// to index their own collection directly instead of going through Get.
func Positions(hull []Index) []int {
	positions := make([]int, len(hull))
	for i, ix := range hull {
		positions[i] = ix.pos
	}
	return positions
}

// Source is the capability set a point collection must provide to have its
// hull computed. Implementations for common containers live in this package;
// anything else only needs these two methods.
type Source interface {
	// Get returns the point at an Index. It is only ever called with Indexes
	// wrapped from positions this Source yielded during the current
	// ConvexHull call, so implementations may skip their own validation.
	Get(ix Index) Point

	// Iterate visits every (position, point) pair exactly once, in any
	// order. ConvexHull calls it exactly once per computation.
	Iterate(visit func(pos int, pt Point))
}

// entry is the engine's working copy of one iterated point. Candidate
// subsets are slices of entries so the recursion never touches the Source
// after the snapshot.
type entry struct {
	pos int
	pt  Point
}
