package quickhull

// The divide-and-conquer hull construction. The source is iterated exactly
// once into a snapshot, the snapshot is split by the baseline between the two
// x-extremes, and each side is refined recursively quickhull-style: pick the
// farthest point from the baseline (always a hull vertex), keep only the
// points strictly outside the triangle it forms with the baseline ends, and
// recurse on the two new baselines. Discarded points can never resurface,
// which is what makes the running time O(n log h) for n points and h hull
// vertices, and also what guarantees termination.

// ConvexHull computes the convex hull of the points in src.
//
// The result lists the hull's vertices in counterclockwise order (assuming y
// grows up the page), starting at the point with the smallest x value (the
// smallest y, for sets thinner than Tolerance in x). The
// boundary is not closed: the first Index is not repeated at the end, and no
// Index appears twice. Fewer than three distinct points yield a degenerate
// hull of all distinct points. Points with NaN or infinite coordinates are
// ignored. Duplicate points that land on the hull are represented by one
// arbitrarily chosen position.
//
// Every returned Index came from src's own Iterate call, so dereferencing
// them through src.Get is always in bounds.
func ConvexHull(src Source) []Index {
	ents := snapshot(src)
	if hull, done := degenerateHull(ents); done {
		return hull
	}
	lo, hi, ok := anchors(ents)
	if !ok {
		// The whole set sits in one Tolerance-sized cluster; one
		// representative.
		return []Index{{lo.pos}}
	}
	lower, upper := baselineSplit(lo, hi, ents)
	return append(chain(lo, hi, lower), chain(hi, lo, upper)...)
}

// snapshot materializes the single Iterate pass, dropping nonreal points.
func snapshot(src Source) []entry {
	var ents []entry
	src.Iterate(func(pos int, pt Point) {
		if !isReal(pt) {
			return
		}
		ents = append(ents, entry{pos, pt})
	})
	return ents
}

// degenerateHull handles snapshots with fewer than three points, which are
// their own hull. Order is by position so the result doesn't depend on the
// source's iteration order.
func degenerateHull(ents []entry) ([]Index, bool) {
	switch len(ents) {
	case 0:
		return nil, true
	case 1:
		return []Index{{ents[0].pos}}, true
	case 2:
		a, b := ents[0], ents[1]
		if b.pos < a.pos {
			a, b = b, a
		}
		if SamePoint(a.pt, b.pt) {
			return []Index{{a.pos}}, true
		}
		return []Index{{a.pos}, {b.pos}}, true
	}
	return nil, false
}

// anchors picks the baseline endpoints. Normally these are the x-extremes,
// but when those coincide within Tolerance the set is a hairline-vertical
// sliver and its x values say nothing about its extent, so the y-extremes
// take over. ok is false when both extreme pairs coincide, meaning the whole
// set fits in one Tolerance-sized cluster.
func anchors(ents []entry) (lo, hi entry, ok bool) {
	lo, hi = extremes(ents)
	if !SamePoint(lo.pt, hi.pt) {
		return lo, hi, true
	}
	lo, hi = extremesY(ents)
	return lo, hi, !SamePoint(lo.pt, hi.pt)
}

// extremes finds the x-extreme anchors in one pass: lo has the smallest x
// (ties to the smallest y), hi the largest x (ties to the largest y). The
// tie rules make an exactly-vertical point set produce a bottom-to-top
// baseline; near-vertical sets fall through to extremesY via anchors.
func extremes(ents []entry) (lo, hi entry) {
	lo, hi = ents[0], ents[0]
	for _, e := range ents[1:] {
		if e.pt.X < lo.pt.X || (e.pt.X == lo.pt.X && e.pt.Y < lo.pt.Y) {
			lo = e
		}
		if e.pt.X > hi.pt.X || (e.pt.X == hi.pt.X && e.pt.Y > hi.pt.Y) {
			hi = e
		}
	}
	return lo, hi
}

// extremesY is the hairline-vertical fallback: lo has the smallest y (ties
// to the smallest x), hi the largest y (ties to the largest x).
func extremesY(ents []entry) (lo, hi entry) {
	lo, hi = ents[0], ents[0]
	for _, e := range ents[1:] {
		if e.pt.Y < lo.pt.Y || (e.pt.Y == lo.pt.Y && e.pt.X < lo.pt.X) {
			lo = e
		}
		if e.pt.Y > hi.pt.Y || (e.pt.Y == hi.pt.Y && e.pt.X > hi.pt.X) {
			hi = e
		}
	}
	return lo, hi
}

// baselineSplit partitions the snapshot by which side of the lo→hi baseline
// each point falls on. Points within Tolerance of the baseline lie on the
// segment between two hull vertices and are discarded, as are the anchors
// themselves, so neither candidate set can ever reintroduce an anchor.
func baselineSplit(lo, hi entry, ents []entry) (lower, upper []entry) {
	for _, e := range ents {
		if e.pos == lo.pos || e.pos == hi.pos {
			continue
		}
		c := Cross(lo.pt, hi.pt, e.pt)
		switch {
		case c < -Tolerance:
			lower = append(lower, e)
		case c > Tolerance:
			upper = append(upper, e)
		}
	}
	return lower, upper
}

// chain returns the hull vertices from a up to but excluding b, given
// candidates known to lie strictly to the right of the directed line a→b.
// The caller stitches chains together, so excluding b means concatenation
// never duplicates a vertex.
func chain(a, b entry, cands []entry) []Index {
	if len(cands) == 0 {
		return []Index{{a.pos}}
	}
	p := selectPivot(a.pt, b.pt, cands)
	s1, s2 := splitOutside(a, b, p, cands)
	return append(chain(a, p, s1), chain(p, b, s2)...)
}

// selectPivot picks the candidate farthest from the a→b baseline. All
// candidates are to the right, so "farthest" is the most negative cross
// product (the baseline length factors out). Candidates within Tolerance of
// the farthest count as tied and the lowest position wins. The true minimum
// is found first so that a chain of pairwise near-ties cannot drift the
// pivot away from the farthest point.
func selectPivot(a, b Point, cands []entry) entry {
	best := Cross(a, b, cands[0].pt)
	for _, e := range cands[1:] {
		if c := Cross(a, b, e.pt); c < best {
			best = c
		}
	}

	pivot := cands[0]
	chosen := false
	for _, e := range cands {
		if !Equal(Cross(a, b, e.pt), best) {
			continue
		}
		if !chosen || e.pos < pivot.pos {
			pivot, chosen = e, true
		}
	}
	return pivot
}

// splitOutside partitions the candidates around pivot p: s1 is strictly
// outside the a→p edge, s2 strictly outside the p→b edge. Everything else is
// inside or on the triangle (a, p, b) and can never be a hull vertex, so it
// is dropped here and never looked at again.
func splitOutside(a, b, p entry, cands []entry) (s1, s2 []entry) {
	for _, e := range cands {
		if e.pos == p.pos {
			continue
		}
		if Cross(a.pt, p.pt, e.pt) < -Tolerance {
			s1 = append(s1, e)
		} else if Cross(p.pt, b.pt, e.pt) < -Tolerance {
			s2 = append(s2, e)
		}
	}
	return s1, s2
}
