package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A configurable misbehaving source for exercising VerifySource.
type brokenSource struct {
	points      []Point
	yieldTwice  bool
	negativePos bool
	moveOnGet   bool
}

func (s *brokenSource) Get(ix Index) Point {
	pt := s.points[ix.Pos()]
	if s.moveOnGet {
		pt.X += 1
	}
	return pt
}

func (s *brokenSource) Iterate(visit func(pos int, pt Point)) {
	for i, pt := range s.points {
		visit(i, pt)
	}
	if s.yieldTwice {
		visit(0, s.points[0])
	}
	if s.negativePos {
		visit(-1, s.points[0])
	}
}

func TestVerifySource(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}}

	verify := func(src Source) (err error) {
		defer func() {
			err = HandleHullPanicRecover(recover())
		}()
		VerifySource(src)
		return nil
	}

	t.Run("well-behaved source", func(t *testing.T) {
		assert.NoError(t, verify(&brokenSource{points: points}))
	})

	t.Run("position yielded twice", func(t *testing.T) {
		err := verify(&brokenSource{points: points, yieldTwice: true})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "twice")
	})

	t.Run("negative position", func(t *testing.T) {
		err := verify(&brokenSource{points: points, negativePos: true})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("get disagrees with iterate", func(t *testing.T) {
		err := verify(&brokenSource{points: points, moveOnGet: true})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Iterate yielded")
	})
}
