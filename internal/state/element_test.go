package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"line":      KindLine,
		"rectangle": KindRectangle,
		"square":    KindRectangle,
		"freehand":  KindFreehand,
		"pencil":    KindFreehand,
		"text":      KindText,
		"sticky":    KindSticky,
	} {
		k, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, k, in)
	}

	_, err := ParseKind("ellipse")
	assert.ErrorIs(t, err, ErrUnrecognizedType)
}

func TestCreateElement(t *testing.T) {
	style := DefaultStyle()

	e, err := CreateElement(0, 10, 20, 10, 20, KindLine, style)
	require.NoError(t, err)
	line, ok := e.(Line)
	require.True(t, ok)
	assert.Equal(t, 0, line.ID())
	assert.Equal(t, "line", line.Shape.Shape)

	e, err = CreateElement(1, 10, 20, 30, 40, KindRectangle, style)
	require.NoError(t, err)
	rect := e.(Rectangle)
	assert.Equal(t, "rectangle", rect.Shape.Shape)
	assert.True(t, rect.Shape.Filled)
	assert.Equal(t, style.Fill, rect.Shape.Fill)

	e, err = CreateElement(2, 5, 6, 5, 6, KindFreehand, style)
	require.NoError(t, err)
	assert.Equal(t, []vec.Vec2{{X: 5, Y: 6}}, e.(Freehand).Points)

	e, err = CreateElement(3, 5, 6, 5, 6, KindText, style)
	require.NoError(t, err)
	assert.Equal(t, Text{Index: 3, X1: 5, Y1: 6, X2: 5, Y2: 6}, e)

	e, err = CreateElement(4, 0, 0, 0, 0, KindSticky, style)
	assert.NoError(t, err)
	assert.Nil(t, e)

	_, err = CreateElement(5, 0, 0, 0, 0, Kind(99), style)
	var merr *ModelError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "create element", merr.Op)
	assert.ErrorIs(t, err, ErrUnrecognizedType)
}

func TestShapeFollowsCoordinates(t *testing.T) {
	r := Rectangle{Index: 2, Style: DefaultStyle()}.At(0, 0, 10, 10)
	same := Rectangle{Index: 2, Style: DefaultStyle()}.At(0, 0, 10, 10)
	assert.Equal(t, r, same)

	moved := r.At(5, 5, 15, 15)
	assert.NotEqual(t, r.Shape, moved.Shape)
}

func TestNormalizeRectangle(t *testing.T) {
	r := Rectangle{Index: 0, Style: DefaultStyle()}.At(200, 200, 100, 100)
	n := Normalize(r).(Rectangle)
	assert.Equal(t, [4]float64{100, 100, 200, 200}, [4]float64{n.X1, n.Y1, n.X2, n.Y2})
	assert.LessOrEqual(t, n.X1, n.X2)
	assert.LessOrEqual(t, n.Y1, n.Y2)

	// mixed corners
	r = r.At(200, 100, 100, 200)
	n = Normalize(r).(Rectangle)
	assert.Equal(t, [4]float64{100, 100, 200, 200}, [4]float64{n.X1, n.Y1, n.X2, n.Y2})
}

func TestNormalizeLine(t *testing.T) {
	cases := []struct {
		name string
		in   [4]float64
		want [4]float64
	}{
		{"left to right", [4]float64{0, 0, 10, 10}, [4]float64{0, 0, 10, 10}},
		{"right to left", [4]float64{10, 10, 0, 0}, [4]float64{0, 0, 10, 10}},
		{"vertical upward", [4]float64{5, 20, 5, 0}, [4]float64{5, 0, 5, 20}},
		{"vertical downward", [4]float64{5, 0, 5, 20}, [4]float64{5, 0, 5, 20}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := Line{Index: 0, Style: DefaultStyle()}.At(c.in[0], c.in[1], c.in[2], c.in[3])
			n := Normalize(l).(Line)
			assert.Equal(t, c.want, [4]float64{n.X1, n.Y1, n.X2, n.Y2})
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	elems := []Element{
		Line{Index: 0, Style: DefaultStyle()}.At(9, 3, 1, 7),
		Rectangle{Index: 1, Style: DefaultStyle()}.At(50, 60, 10, 20),
		Freehand{Index: 2, Points: []vec.Vec2{{X: 3, Y: 3}, {X: 1, Y: 1}}},
		Text{Index: 3, X1: 1, Y1: 2, X2: 40, Y2: 26, Text: "hi"},
	}
	for _, e := range elems {
		once := Normalize(e)
		assert.Equal(t, once, Normalize(once), e.Kind().String())
	}
}

func TestNormalizeLeavesOthersAlone(t *testing.T) {
	f := Freehand{Index: 0, Points: []vec.Vec2{{X: 3, Y: 3}, {X: 1, Y: 1}}}
	assert.Equal(t, f, Normalize(f))
}

func TestCloneIsDeep(t *testing.T) {
	f := Freehand{Index: 0, Points: []vec.Vec2{{X: 1, Y: 1}}}
	c := f.Clone().(Freehand)
	c.Points[0].X = 42
	assert.Equal(t, 1.0, f.Points[0].X)
}
