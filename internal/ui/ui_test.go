package ui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/config"
	"MyWhiteboard/internal/state"
)

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestBoard(t *testing.T, opts ...board.Option) (*BoardWidget, fyne.Window) {
	t.Helper()
	test.NewApp()
	w, err := NewBoardWidget(200, 200, opts...)
	require.NoError(t, err)
	win := test.NewWindow(w)
	win.Resize(fyne.NewSize(200, 200))
	t.Cleanup(win.Close)
	return w, win
}

func TestMouseDrawsRectangle(t *testing.T) {
	w, _ := newTestBoard(t, board.WithTool(board.ToolRectangle))

	w.MouseDown(mouse(150, 150))
	w.Dragged(drag(120, 120))
	w.Dragged(drag(50, 50))
	w.MouseUp(mouse(50, 50))
	w.DragEnd()

	s := w.Board().Elements()
	require.Equal(t, 1, s.Len())
	r := s.At(0).(state.Rectangle)
	assert.Equal(t, [4]float64{50, 50, 150, 150}, [4]float64{r.X1, r.Y1, r.X2, r.Y2})
	assert.Equal(t, 2, w.Board().HistoryLen())
}

func TestSecondaryButtonIgnored(t *testing.T) {
	w, _ := newTestBoard(t)
	ev := mouse(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	w.MouseDown(ev)
	assert.Equal(t, 0, w.Board().Elements().Len())
}

func TestTouchDrawsLine(t *testing.T) {
	w, _ := newTestBoard(t, board.WithTool(board.ToolLine))

	w.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(80, 80)}})
	w.Dragged(drag(20, 30))
	w.TouchUp(&mobile.TouchEvent{})

	l := w.Board().Elements().At(0).(state.Line)
	assert.Equal(t, [4]float64{20, 30, 80, 80}, [4]float64{l.X1, l.Y1, l.X2, l.Y2})
	assert.Equal(t, board.ActionNone, w.Board().Action())
}

func TestTextOverlay(t *testing.T) {
	w, win := newTestBoard(t, board.WithTool(board.ToolText))

	w.MouseDown(mouse(30, 40))
	w.MouseUp(mouse(30, 40))
	require.True(t, w.editing)
	assert.True(t, w.entry.Visible())
	assert.Equal(t, fyne.NewPos(30, 38), w.entry.Position())
	assert.Equal(t, w.entry, win.Canvas().Focused())

	w.entry.SetText("hello")
	win.Canvas().Unfocus()

	assert.False(t, w.editing)
	assert.False(t, w.entry.Visible())
	txt := w.Board().Elements().At(0).(state.Text)
	assert.Equal(t, "hello", txt.Text)
	assert.Greater(t, txt.X2, txt.X1)
	assert.Equal(t, txt.Y1+state.TextHeight, txt.Y2)
}

func TestUndoClosesOverlay(t *testing.T) {
	w, _ := newTestBoard(t, board.WithTool(board.ToolText))
	w.MouseDown(mouse(30, 40))
	require.True(t, w.editing)

	w.HandleKey(board.Chord{Key: "z", Ctrl: true})
	assert.False(t, w.editing)
	assert.False(t, w.entry.Visible())
	assert.Equal(t, 0, w.Board().Elements().Len())
}

func TestCursorFeedback(t *testing.T) {
	w, _ := newTestBoard(t, board.WithTool(board.ToolRectangle))
	w.MouseDown(mouse(20, 20))
	w.Dragged(drag(80, 80))
	w.MouseUp(mouse(80, 80))
	w.SetTool(board.ToolSelect)

	w.MouseMoved(mouse(50, 50))
	assert.Equal(t, desktop.PointerCursor, w.Cursor())
	w.MouseMoved(mouse(20, 20))
	assert.Equal(t, desktop.CrosshairCursor, w.Cursor())
	w.MouseOut()
	assert.Equal(t, desktop.DefaultCursor, w.Cursor())
}

func TestSnapshotFollowsBoard(t *testing.T) {
	w, _ := newTestBoard(t)
	w.SetBackground(color.NRGBA{B: 0xff, A: 0xff})
	r, g, b, _ := w.Snapshot().At(5, 5).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestNotesPanel(t *testing.T) {
	test.NewApp()
	p := NewNotesPanel()

	p.input.SetText("   ")
	p.Add()
	assert.Empty(t, p.Notes())

	p.input.SetText("call Bob")
	p.Add()
	require.Len(t, p.Notes(), 1)
	assert.Equal(t, "call Bob", p.Notes()[0].Text)
	assert.Empty(t, p.input.Text)
	require.Len(t, p.cards, 1)

	card := p.cards[p.Notes()[0].ID]
	start := card.Position()
	card.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 70)},
		Dragged:    fyne.NewDelta(5, 5),
	})
	card.DragEnd()
	assert.Equal(t, start.Add(fyne.NewPos(60, 70)).Subtract(fyne.NewPos(50, 50)), card.Position())

	p.Delete(p.Notes()[0])
	assert.Empty(t, p.Notes())
	assert.Empty(t, p.cards)
}

func TestNewApp(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 400, 300
	cfg.Tool = "line"

	a, err := NewApp(test.NewApp(), cfg)
	require.NoError(t, err)
	defer a.Window().Close()

	assert.Equal(t, board.ToolLine, a.Board().Board().Tool())
	assert.NotNil(t, a.Window().Content())
	a.SetStatus("hello")
	assert.Eventually(t, func() bool { return a.status.Text == "hello" }, time.Second, 10*time.Millisecond)
}

func TestWindowHistoryShortcuts(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 400, 300
	cfg.Tool = "square"

	a, err := NewApp(test.NewApp(), cfg)
	require.NoError(t, err)
	defer a.Window().Close()

	bw := a.Board()
	bw.MouseDown(mouse(20, 20))
	bw.Dragged(drag(80, 80))
	bw.MouseUp(mouse(80, 80))
	b := bw.Board()
	require.Equal(t, 1, b.HistoryIndex())

	c, ok := a.Window().Canvas().(fyne.Shortcutable)
	require.True(t, ok)

	c.TypedShortcut(&fyne.ShortcutUndo{})
	assert.Equal(t, 0, b.HistoryIndex())
	c.TypedShortcut(&fyne.ShortcutRedo{})
	assert.Equal(t, 1, b.HistoryIndex())

	c.TypedShortcut(&fyne.ShortcutUndo{})
	c.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift})
	assert.Equal(t, 1, b.HistoryIndex())
	assert.Equal(t, 1, b.Elements().Len())
}

func TestShortcutsReachBoardWhileWriting(t *testing.T) {
	w, _ := newTestBoard(t, board.WithTool(board.ToolText))
	w.MouseDown(mouse(30, 40))
	require.True(t, w.editing)
	require.Equal(t, 1, w.Board().HistoryIndex())

	w.entry.TypedShortcut(&fyne.ShortcutUndo{})
	assert.False(t, w.editing)
	assert.Equal(t, 0, w.Board().HistoryIndex())

	w.entry.TypedShortcut(&fyne.ShortcutRedo{})
	assert.Equal(t, 1, w.Board().HistoryIndex())
}
