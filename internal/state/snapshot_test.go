package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestSnapshotAppendAndReplace(t *testing.T) {
	s0 := NewSnapshot()
	s1 := s0.Append(Freehand{Index: 0, Points: []vec.Vec2{{X: 1, Y: 1}}})
	assert.Equal(t, 0, s0.Len())
	require.Equal(t, 1, s1.Len())

	s2 := s1.Replace(0, Freehand{Index: 0, Points: []vec.Vec2{{X: 2, Y: 2}}})
	assert.Equal(t, 1.0, s1.At(0).(Freehand).Points[0].X)
	assert.Equal(t, 2.0, s2.At(0).(Freehand).Points[0].X)
}

func TestSnapshotAtReturnsCopy(t *testing.T) {
	s := NewSnapshot(Freehand{Index: 0, Points: []vec.Vec2{{X: 1, Y: 1}}})
	f := s.At(0).(Freehand)
	f.Points[0].X = 99
	assert.Equal(t, 1.0, s.At(0).(Freehand).Points[0].X)
}

func TestSnapshotIdsMatchSlots(t *testing.T) {
	s := NewSnapshot(text(0, "a"), text(1, "b"), text(2, "c"))
	for id, e := range s.All() {
		assert.Equal(t, id, e.ID())
	}
}

func TestSnapshotRejectsWrongID(t *testing.T) {
	s := NewSnapshot(text(0, "a"))
	assert.Panics(t, func() { s.Append(text(5, "x")) })
	assert.Panics(t, func() { s.Replace(0, text(1, "x")) })
	assert.Panics(t, func() { s.Replace(3, text(3, "x")) })
}

func bigRectangles(t *testing.T, n int) Snapshot {
	t.Helper()
	s := NewSnapshot()
	for i := range n {
		e, err := CreateElement(i, 10, 10, 910, 710, KindRectangle, DefaultStyle())
		require.NoError(t, err)
		s = s.Append(e)
	}
	return s
}

func TestSnapshotSharesShapes(t *testing.T) {
	s := bigRectangles(t, 1)
	a := s.At(0).(Rectangle)
	b := s.Replace(0, a).At(0).(Rectangle)
	require.NotEmpty(t, a.Shape.Sets)
	require.NotEmpty(t, a.Shape.Sets[0].Ops)
	assert.Same(t, &a.Shape.Sets[0].Ops[0], &b.Shape.Sets[0].Ops[0])
}

func TestSnapshotReplaceCostIndependentOfShapes(t *testing.T) {
	s := bigRectangles(t, 20)
	var moved Element = s.At(3).(Rectangle).At(20, 20, 920, 720)
	h := NewHistory(s)

	allocs := testing.AllocsPerRun(50, func() {
		h.Commit(h.Current().Replace(3, moved), true)
	})
	assert.LessOrEqual(t, allocs, 2.0)
	assert.Equal(t, 1, h.Len())
}
