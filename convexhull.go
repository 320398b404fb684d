// An asymptotically fast planar convex hull package for Go.
//
// This package computes the convex hull of a set of 2D points in O(n log h)
// time, where h is the number of hull vertices, using a divide-and-conquer
// (quickhull-style) algorithm. The algorithm runs against a two-method
// capability interface, so any container that can hand out (position, point)
// pairs can have its hull computed without copying into a dedicated type.
// The result is a sequence of opaque indices into the original collection
// rather than a slice of copied points.
package convexhull

import "github.com/osuushi/convexhull/quickhull"

type Point = quickhull.Point
type Index = quickhull.Index
type Source = quickhull.Source

// ConvexHull computes the convex hull of a slice of points.
//
// The returned indices identify the hull's vertices within the input slice,
// in counterclockwise order starting from the leftmost point, with the
// boundary left open (the first vertex is not repeated at the end). Collinear
// and duplicate points are handled: fewer than three distinct points produce
// a degenerate hull of all distinct points. See the quickhull package for
// computing hulls of other containers, the parallel variant, and the raw
// index escape hatch.
func ConvexHull(points []Point) []Index {
	return quickhull.ConvexHull(quickhull.Points(points))
}

// ConvexHullOf computes the convex hull of the points in any Source.
func ConvexHullOf(src Source) []Index {
	return quickhull.ConvexHull(src)
}

// ConvexHullChecked verifies that src honors the Source contract (each
// position yielded once, Get consistent with Iterate) before computing its
// hull. Use this while bringing up a new adapter; the unchecked entry points
// never pay for validation.
func ConvexHullChecked(src Source) (hull []Index, err error) {
	defer func() {
		recoveredErr := quickhull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	quickhull.VerifySource(src)
	return quickhull.ConvexHull(src), nil
}

// Positions unwraps a hull into raw integer positions for callers that want
// to index their own collection directly.
func Positions(hull []Index) []int {
	return quickhull.Positions(hull)
}
