package quickhull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
	assert.True(t, Equal(-0.0, 0.0))
}

func TestCross(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	// c to the left of a→b
	assert.Positive(t, Cross(a, b, Point{5, 1}))
	// c to the right
	assert.Negative(t, Cross(a, b, Point{5, -1}))
	// c on the line
	assert.Zero(t, Cross(a, b, Point{5, 0}))
	// magnitude is twice the triangle area
	assert.InDelta(t, 20.0, Cross(a, b, Point{0, 2}), Tolerance)
}

func TestSamePoint(t *testing.T) {
	assert.True(t, SamePoint(Point{1, 2}, Point{1, 2}))
	assert.True(t, SamePoint(Point{1, 2}, Point{1 + Tolerance/2, 2}))
	assert.False(t, SamePoint(Point{1, 2}, Point{2, 1}))
}

func TestIsReal(t *testing.T) {
	assert.True(t, isReal(Point{0, 0}))
	assert.False(t, isReal(Point{math.NaN(), 0}))
	assert.False(t, isReal(Point{0, math.NaN()}))
	assert.False(t, isReal(Point{math.Inf(1), 0}))
	assert.False(t, isReal(Point{0, math.Inf(-1)}))
}
