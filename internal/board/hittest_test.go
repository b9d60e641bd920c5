package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/state"
)

func TestResolvePositionLine(t *testing.T) {
	l := state.Line{Index: 0}.At(0, 0, 100, 100)
	assert.Equal(t, RegionStart, ResolvePosition(2, 2, l))
	assert.Equal(t, RegionEnd, ResolvePosition(99, 103, l))
	assert.Equal(t, RegionInside, ResolvePosition(50, 50, l))
	assert.Equal(t, RegionNone, ResolvePosition(50, 70, l))
}

func TestResolvePositionRectangle(t *testing.T) {
	r := state.Rectangle{Index: 0}.At(10, 10, 50, 50)
	assert.Equal(t, RegionTopLeft, ResolvePosition(12, 8, r))
	assert.Equal(t, RegionTopRight, ResolvePosition(50, 10, r))
	assert.Equal(t, RegionBottomLeft, ResolvePosition(10, 50, r))
	assert.Equal(t, RegionBottomRight, ResolvePosition(54, 54, r))
	assert.Equal(t, RegionInside, ResolvePosition(30, 30, r))
	assert.Equal(t, RegionInside, ResolvePosition(10, 30, r), "edges are inside")
	assert.Equal(t, RegionNone, ResolvePosition(60, 30, r))
}

func TestResolvePositionFreehand(t *testing.T) {
	f := state.Freehand{Index: 0, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	assert.Equal(t, RegionInside, ResolvePosition(5, 0, f))
	assert.Equal(t, RegionInside, ResolvePosition(10, 5, f))
	assert.Equal(t, RegionNone, ResolvePosition(5, 20, f))

	single := state.Freehand{Index: 0, Points: []vec.Vec2{{X: 0, Y: 0}}}
	assert.Equal(t, RegionNone, ResolvePosition(0, 0, single))
}

func TestResolvePositionText(t *testing.T) {
	txt := state.Text{Index: 0, X1: 10, Y1: 10, X2: 60, Y2: 34, Text: "hello"}
	assert.Equal(t, RegionInside, ResolvePosition(30, 20, txt))
	assert.Equal(t, RegionNone, ResolvePosition(30, 40, txt))
	assert.Equal(t, RegionNone, ResolvePosition(0, 0, state.Sticky{}))
}

func TestFindTopmostAtScansInSlotOrder(t *testing.T) {
	s := state.NewSnapshot(
		state.Rectangle{Index: 0}.At(0, 0, 100, 100),
		state.Rectangle{Index: 1}.At(50, 50, 150, 150),
	)
	hit, ok := FindTopmostAt(75, 75, s)
	assert.True(t, ok)
	assert.Equal(t, 0, hit.Element.ID())
	assert.Equal(t, RegionInside, hit.Region)

	hit, ok = FindTopmostAt(140, 140, s)
	assert.True(t, ok)
	assert.Equal(t, 1, hit.Element.ID())

	_, ok = FindTopmostAt(500, 500, s)
	assert.False(t, ok)
}

func TestCursorFor(t *testing.T) {
	assert.Equal(t, "nwse-resize", CursorFor(RegionTopLeft).String())
	assert.Equal(t, "nwse-resize", CursorFor(RegionEnd).String())
	assert.Equal(t, "nesw-resize", CursorFor(RegionBottomLeft).String())
	assert.Equal(t, "move", CursorFor(RegionInside).String())
	assert.Equal(t, "default", CursorFor(RegionNone).String())
	assert.True(t, RegionStart.IsHandle())
	assert.False(t, RegionInside.IsHandle())
}

func TestShortcutFor(t *testing.T) {
	assert.Equal(t, UndoShortcut, ShortcutFor(Chord{Key: "z", Ctrl: true}))
	assert.Equal(t, RedoShortcut, ShortcutFor(Chord{Key: "z", Ctrl: true, Shift: true}))
	assert.Equal(t, RedoShortcut, ShortcutFor(Chord{Key: "y", Meta: true}))
	assert.Equal(t, NoShortcut, ShortcutFor(Chord{Key: "y"}))
}

func TestFromTouch(t *testing.T) {
	origin := vec.Vec2{X: 10, Y: 20}
	ev := FromTouch(TouchStart, 15, 25, origin)
	assert.Equal(t, Event{Type: PointerDown, Source: SourceTouch, X: 5, Y: 5}, ev)
	assert.Equal(t, PointerMove, FromTouch(TouchMove, 0, 0, origin).Type)
	end := FromTouch(TouchEnd, 99, 99, origin)
	assert.Equal(t, PointerUp, end.Type)
	assert.True(t, end.Positionless)
}
