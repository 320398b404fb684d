package quickhull

import "github.com/quasilyte/gmath"

// Adapters for common containers. Each Get indexes its backing storage
// directly: the positions inside an Index always came from the adapter's own
// Iterate, so there is nothing to revalidate. Anything not covered here just
// needs its own two-method Source implementation.

// Slice adapts a slice of point-like values. Positions are slice indices.
type Slice[P PointLike] []P

func (s Slice[P]) Get(ix Index) Point {
	x, y := s[ix.pos].XY()
	return Point{x, y}
}

func (s Slice[P]) Iterate(visit func(pos int, pt Point)) {
	for i, p := range s {
		x, y := p.XY()
		visit(i, Point{x, y})
	}
}

// Points is the adapter for a plain []Point.
type Points = Slice[Point]

// Map adapts a map keyed by position. Keys may be sparse and in any order;
// map iteration order varies between calls, but the engine only iterates
// once per computation, so that's fine.
type Map[P PointLike] map[int]P

func (m Map[P]) Get(ix Index) Point {
	x, y := m[ix.pos].XY()
	return Point{x, y}
}

func (m Map[P]) Iterate(visit func(pos int, pt Point)) {
	for k, p := range m {
		x, y := p.XY()
		visit(k, Point{x, y})
	}
}

// VecSlice adapts a slice of gmath vectors.
type VecSlice []gmath.Vec

func (s VecSlice) Get(ix Index) Point {
	v := s[ix.pos]
	return Point{v.X, v.Y}
}

func (s VecSlice) Iterate(visit func(pos int, pt Point)) {
	for i, v := range s {
		visit(i, Point{v.X, v.Y})
	}
}
