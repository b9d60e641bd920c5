package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNear(t *testing.T) {
	assert.True(t, IsNear(0, 0, 4.9, -4.9, HandleTolerance))
	assert.False(t, IsNear(0, 0, 5, 0, HandleTolerance), "tolerance is exclusive")
	assert.False(t, IsNear(0, 0, 0, 6, HandleTolerance))
}

func TestPointOnSegment(t *testing.T) {
	assert.True(t, PointOnSegment(0, 0, 10, 0, 5, 0, LineTolerance))
	assert.True(t, PointOnSegment(0, 0, 100, 100, 50, 50, LineTolerance))
	assert.False(t, PointOnSegment(0, 0, 10, 0, 5, 20, FreehandTolerance))
	// past the end of the segment
	assert.False(t, PointOnSegment(0, 0, 10, 0, 20, 0, LineTolerance))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(Pt(0, 0), Pt(3, 4)), 1e-9)
}

func TestBounds(t *testing.T) {
	b := Bounds{X1: 200, Y1: 10, X2: 100, Y2: 50}.Canon()
	assert.Equal(t, Bounds{X1: 100, Y1: 10, X2: 200, Y2: 50}, b)
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 40.0, b.Height())

	assert.True(t, b.Contains(100, 10))
	assert.True(t, b.Contains(200, 50))
	assert.True(t, b.Contains(150, 30))
	assert.False(t, b.Contains(99, 30))
}
