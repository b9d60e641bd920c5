package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	logging "github.com/ipfs/go-log/v2"
	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/render"
	"MyWhiteboard/internal/state"
)

var log = logging.Logger("ui")

// BoardWidget shows the board and turns mouse, touch and drag input into
// board events. All methods must run on the fyne UI goroutine.
type BoardWidget struct {
	widget.BaseWidget
	board    *board.Board
	renderer *render.Renderer
	image    *canvas.Image
	entry    *textEntry
	editing  bool
	cursor   board.Cursor
	minSize  fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// NewBoardWidget returns a widget with a surface of the given size. The
// board is built with opts plus a text measurer backed by the renderer.
func NewBoardWidget(width, height int, opts ...board.Option) (*BoardWidget, error) {
	r, err := render.New(render.NewSurface(width, height))
	if err != nil {
		return nil, err
	}
	w := &BoardWidget{
		renderer: r,
		minSize:  fyne.NewSize(300, 300),
	}
	w.board = board.New(append(opts, board.WithMeasurer(r))...)
	w.image = canvas.NewImageFromImage(r.Image())
	w.image.FillMode = canvas.ImageFillStretch
	w.image.ScaleMode = canvas.ImageScalePixels
	w.entry = newTextEntry(w.commitText, w.Shortcut)
	w.entry.Hide()
	w.board.OnChange(w.redraw)
	w.ExtendBaseWidget(w)
	w.redraw()
	return w, nil
}

// Board returns the underlying board.
func (w *BoardWidget) Board() *board.Board { return w.board }

// Snapshot returns the pixels currently on screen.
func (w *BoardWidget) Snapshot() image.Image { return w.renderer.Image() }

// Dispatch feeds ev into the board.
func (w *BoardWidget) Dispatch(ev board.Event) { w.board.Dispatch(ev) }

// SetTool switches the board tool.
func (w *BoardWidget) SetTool(t board.Tool) {
	if err := w.board.SetTool(t); err != nil {
		log.Errorf("set tool: %v", err)
	}
}

// HandleKey runs the undo and redo shortcuts.
func (w *BoardWidget) HandleKey(c board.Chord) bool { return w.board.HandleKey(c) }

// historyShortcuts are the shortcuts the window routes to the board. The
// driver delivers plain Ctrl/Cmd+Z and Ctrl/Cmd+Y as ShortcutUndo and
// ShortcutRedo.
var historyShortcuts = []fyne.Shortcut{
	&fyne.ShortcutUndo{},
	&fyne.ShortcutRedo{},
	&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
}

func shortcutChord(s fyne.Shortcut) (board.Chord, bool) {
	switch s := s.(type) {
	case *fyne.ShortcutUndo:
		return board.Chord{Key: "z", Ctrl: true}, true
	case *fyne.ShortcutRedo:
		return board.Chord{Key: "y", Ctrl: true}, true
	case *desktop.CustomShortcut:
		if s.KeyName == fyne.KeyZ && s.Modifier == fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift {
			return board.Chord{Key: "z", Ctrl: true, Shift: true}, true
		}
	}
	return board.Chord{}, false
}

// Shortcut runs s if it is an undo or redo shortcut and reports whether it
// did.
func (w *BoardWidget) Shortcut(s fyne.Shortcut) bool {
	c, ok := shortcutChord(s)
	return ok && w.HandleKey(c)
}

// SetBackground sets the colour under the drawing.
func (w *BoardWidget) SetBackground(c color.Color) {
	w.renderer.SetBackground(c)
	w.redraw()
}

// SetBackdrop sets an image under the drawing. Nil removes it.
func (w *BoardWidget) SetBackdrop(img image.Image) {
	w.renderer.SetBackdrop(img)
	w.redraw()
}

// redraw paints the board and opens or closes the text editor to follow
// the writing state.
func (w *BoardWidget) redraw() {
	w.renderer.RenderBoard(w.board)
	w.image.Image = w.renderer.Image()
	w.image.Refresh()

	id, writing := w.board.Editing()
	switch {
	case writing && !w.editing:
		w.startEditing(id)
	case !writing && w.editing:
		w.editing = false
		if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil && c.Focused() == w.entry {
			c.Unfocus()
		}
		w.entry.Hide()
	}
}

func (w *BoardWidget) startEditing(id int) {
	t, ok := w.board.Elements().At(id).(state.Text)
	if !ok {
		panic(state.Unrecognized("edit", w.board.Elements().At(id)))
	}
	w.editing = true
	w.entry.SetText(t.Text)
	w.entry.Move(fyne.NewPos(float32(t.X1), float32(t.Y1-2)))
	w.entry.Resize(fyne.NewSize(max(200, float32(t.X2-t.X1)+40), w.entry.MinSize().Height))
	w.entry.Show()
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w.entry)
	}
	log.Debugf("editing text %d", id)
}

func (w *BoardWidget) commitText(text string) {
	if w.editing {
		w.board.Blur(text)
	}
}

func point(p fyne.Position) (float64, float64) {
	return float64(p.X), float64(p.Y)
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := point(e.Position)
	w.board.Dispatch(board.Event{Type: board.PointerDown, Source: board.SourceMouse, X: x, Y: y})
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := point(e.Position)
	w.board.Dispatch(board.Event{Type: board.PointerUp, Source: board.SourceMouse, X: x, Y: y})
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	x, y := point(e.Position)
	w.board.Dispatch(board.Event{Type: board.PointerMove, Source: board.SourceMouse, X: x, Y: y})
}

// DragEnd is covered by MouseUp and TouchUp.
func (w *BoardWidget) DragEnd() {}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) { w.MouseMoved(e) }

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	x, y := point(e.Position)
	w.cursor = w.board.CursorAt(x, y)
}

func (w *BoardWidget) MouseOut() { w.cursor = board.CursorDefault }

// Cursor maps the hover region onto the closest cursor the driver offers.
func (w *BoardWidget) Cursor() desktop.Cursor {
	switch w.cursor {
	case board.CursorMove:
		return desktop.PointerCursor
	case board.CursorResizeNWSE, board.CursorResizeNESW:
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (w *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	x, y := point(e.Position)
	w.board.Dispatch(board.FromTouch(board.TouchStart, x, y, vec.Vec2{}))
}

func (w *BoardWidget) TouchUp(*mobile.TouchEvent) {
	w.board.Dispatch(board.FromTouch(board.TouchEnd, 0, 0, vec.Vec2{}))
}

func (w *BoardWidget) TouchCancel(e *mobile.TouchEvent) { w.TouchUp(e) }

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: w}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	w := r.board
	w.image.Resize(size)
	w.renderer.Resize(int(size.Width), int(size.Height))
	w.redraw()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size { return r.board.minSize }

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
	r.board.entry.Refresh()
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image, r.board.entry}
}

func (r *boardWidgetRenderer) Destroy() {}

// textEntry is the writing overlay. Losing focus commits its text.
type textEntry struct {
	widget.Entry
	onBlur     func(string)
	onShortcut func(fyne.Shortcut) bool
}

func newTextEntry(onBlur func(string), onShortcut func(fyne.Shortcut) bool) *textEntry {
	e := &textEntry{onBlur: onBlur, onShortcut: onShortcut}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(string) {
		if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
			c.Unfocus()
			return
		}
		e.onBlur(e.Text)
	}
	return e
}

func (e *textEntry) FocusLost() {
	e.Entry.FocusLost()
	e.onBlur(e.Text)
}

// TypedShortcut hands undo and redo to the board so they stay global while
// the overlay has focus.
func (e *textEntry) TypedShortcut(s fyne.Shortcut) {
	if e.onShortcut(s) {
		return
	}
	e.Entry.TypedShortcut(s)
}
