package quickhull

import (
	"fmt"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

// The two chains on either side of the baseline, and the two sub-chains on
// either side of a pivot, read disjoint candidate slices and produce disjoint
// output segments, so they can run as independent fork-join tasks with no
// locking. Joining in the same order as the sequential concatenation keeps
// the output identical to ConvexHull.

// forkThreshold is the candidate count below which a task runs the
// sequential chain instead of forking. Tiny subproblems finish faster than a
// goroutine spawn plus join.
const forkThreshold = 1024

// ConvexHullParallel is ConvexHull with the recursive subproblems evaluated
// concurrently once they are large enough to pay for the goroutines. The
// result is identical to ConvexHull on the same source.
func ConvexHullParallel(src Source) []Index {
	ents := snapshot(src)
	if hull, done := degenerateHull(ents); done {
		return hull
	}
	lo, hi, ok := anchors(ents)
	if !ok {
		return []Index{{lo.pos}}
	}
	lower, upper := baselineSplit(lo, hi, ents)

	lowerTask := &chainTask{a: lo, b: hi, cands: lower}
	upperTask := &chainTask{a: hi, b: lo, cands: upper}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		upperTask.run()
	}()
	lowerTask.run()
	wg.Wait()

	return append(lowerTask.out, upperTask.out...)
}

// A chainTask is one chain(a, b, cands) subproblem. run either computes it
// sequentially or forks the two pivot subproblems, using the same pivot
// selection and partition as the sequential path, so the two paths cannot
// disagree about the hull.
type chainTask struct {
	a, b  entry
	cands []entry
	out   []Index
}

func (t *chainTask) run() {
	if len(t.cands) < forkThreshold {
		t.out = chain(t.a, t.b, t.cands)
		return
	}

	p := selectPivot(t.a.pt, t.b.pt, t.cands)
	s1, s2 := splitOutside(t.a, t.b, p, t.cands)

	left := &chainTask{a: t.a, b: p, cands: s1}
	right := &chainTask{a: p, b: t.b, cands: s2}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		right.run()
	}()
	left.run()
	wg.Wait()

	t.out = append(left.out, right.out...)
}

func (t *chainTask) String() string {
	return fmt.Sprintf("chainTask %s { (%g, %g) → (%g, %g), %d candidates }",
		t.DbgName(),
		t.a.pt.X, t.a.pt.Y,
		t.b.pt.X, t.b.pt.Y,
		len(t.cands),
	)
}

func (t *chainTask) DbgName() string {
	// Forking tasks are green, sequential leaves are cyan
	name := dbg.Name(t)
	if len(t.cands) >= forkThreshold {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return name
}
