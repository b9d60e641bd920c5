package rough

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIsDeterministic(t *testing.T) {
	g := NewGenerator()
	a := g.Line(0, 0, 100, 50, Options{Seed: 7})
	b := g.Line(0, 0, 100, 50, Options{Seed: 7})
	assert.Equal(t, a, b)

	c := g.Line(0, 0, 100, 50, Options{Seed: 8})
	assert.NotEqual(t, a, c)
}

func TestLineShape(t *testing.T) {
	d := NewGenerator().Line(10, 10, 90, 10, Options{Seed: 1})
	assert.Equal(t, "line", d.Shape)
	assert.Equal(t, color.NRGBA{A: 0xff}, d.Stroke)
	require.Len(t, d.Sets, 1)
	set := d.Sets[0]
	assert.Equal(t, SetOutline, set.Kind)
	require.NotEmpty(t, set.Ops)
	assert.Equal(t, OpMove, set.Ops[0].Kind)

	// every point stays close to the ideal line
	for _, op := range set.Ops {
		for _, p := range op.Pts {
			assert.InDelta(t, 10, p.Y, 10)
		}
	}
}

func TestRectangleHachureBeforeOutline(t *testing.T) {
	fill := color.NRGBA{R: 0xff, A: 0xff}
	d := NewGenerator().Rectangle(0, 0, 40, 30, Options{Fill: fill, Filled: true, HachureGap: 4, Seed: 3})
	require.Len(t, d.Sets, 2)
	assert.Equal(t, SetHachure, d.Sets[0].Kind)
	assert.Equal(t, SetOutline, d.Sets[1].Kind)
	assert.Equal(t, fill, d.Fill)
	assert.NotEmpty(t, d.Sets[0].Ops)
}

func TestRectangleWithoutFill(t *testing.T) {
	d := NewGenerator().Rectangle(0, 0, 40, 30, Options{Seed: 3})
	require.Len(t, d.Sets, 1)
	assert.Equal(t, SetOutline, d.Sets[0].Kind)
}
