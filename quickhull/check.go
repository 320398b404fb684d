package quickhull

// VerifySource checks a Source implementation against the contract the
// engine relies on: every position is yielded at most once, positions are
// non-negative, and Get returns the same point Iterate yielded for that
// position. It is meant for adapter test suites, not for production paths;
// the engine itself never validates its source.
//
// Violations panic with a HullError (recover with HandleHullPanicRecover, or
// use the checked entry point in the root package).
func VerifySource(src Source) {
	seen := make(map[int]Point)
	src.Iterate(func(pos int, pt Point) {
		if pos < 0 {
			fatalf("source yielded negative position %d", pos)
		}
		if prev, ok := seen[pos]; ok {
			fatalf("source yielded position %d twice (points %v and %v)", pos, prev, pt)
		}
		seen[pos] = pt
	})

	for pos, pt := range seen {
		got := src.Get(Index{pos})
		if got != pt {
			fatalf("source Get(%d) = %v, but Iterate yielded %v", pos, got, pt)
		}
	}
}
