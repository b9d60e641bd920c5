// Package board is the interactive core of the whiteboard: it turns
// normalized input events into element creation, move, resize and text
// edits, and records the results in the undo history.
package board

import (
	"image/color"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/geom"
	"MyWhiteboard/internal/state"
)

var log = logging.Logger("board")

// Tool is the active toolbar tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRectangle
	ToolFreehand
	ToolText
	ToolSticky
)

var toolKinds = map[Tool]state.Kind{
	ToolLine:      state.KindLine,
	ToolRectangle: state.KindRectangle,
	ToolFreehand:  state.KindFreehand,
	ToolText:      state.KindText,
	ToolSticky:    state.KindSticky,
}

func (t Tool) String() string {
	if t == ToolSelect {
		return "select"
	}
	if k, ok := toolKinds[t]; ok {
		return k.String()
	}
	return "unknown"
}

// ParseTool accepts "select" and every name ParseKind accepts.
func ParseTool(s string) (Tool, error) {
	if strings.EqualFold(strings.TrimSpace(s), "select") {
		return ToolSelect, nil
	}
	k, err := state.ParseKind(s)
	if err != nil {
		return 0, &state.ModelError{Op: "parse tool", Value: s}
	}
	for t, tk := range toolKinds {
		if tk == k {
			return t, nil
		}
	}
	return 0, &state.ModelError{Op: "parse tool", Value: s}
}

// Action is the interaction state.
type Action int

const (
	ActionNone Action = iota
	ActionDrawing
	ActionMoving
	ActionResizing
	ActionWriting
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDrawing:
		return "drawing"
	case ActionMoving:
		return "moving"
	case ActionResizing:
		return "resizing"
	case ActionWriting:
		return "writing"
	}
	return "unknown"
}

// Selection is the element a gesture works on, copied out of the surface
// when the gesture starts.
type Selection struct {
	Element state.Element
	Region  Region
	// Offset is the cursor minus (x1,y1) at pointer-down, for shapes and text.
	Offset vec.Vec2
	// Offsets is the cursor minus every point at pointer-down, for freehand.
	Offsets []vec.Vec2
	// Down is where the gesture started.
	Down vec.Vec2
}

// TextMeasurer reports the rendered width of a line of text.
type TextMeasurer interface {
	MeasureText(s string) float64
}

type fixedWidth float64

func (w fixedWidth) MeasureText(s string) float64 {
	return float64(w) * float64(len([]rune(s)))
}

// Board owns the element history and the interaction state. It is driven
// from a single goroutine; it does no locking.
type Board struct {
	history  *state.History
	tool     Tool
	style    state.Style
	action   Action
	selected *Selection
	measurer TextMeasurer
	last     vec.Vec2
	onChange []func()
}

// Option configures a Board.
type Option func(*Board)

// WithMeasurer sets the text measurer. Without one every rune counts 12px.
func WithMeasurer(m TextMeasurer) Option {
	return func(b *Board) { b.measurer = m }
}

// WithSnapshot starts the board from s instead of an empty surface.
func WithSnapshot(s state.Snapshot) Option {
	return func(b *Board) { b.history = state.NewHistory(s) }
}

// WithTool sets the initial tool.
func WithTool(t Tool) Option {
	return func(b *Board) { b.tool = t }
}

// WithStyle sets the initial pen.
func WithStyle(s state.Style) Option {
	return func(b *Board) { b.style = s }
}

// New returns an idle board with the freehand tool selected.
func New(opts ...Option) *Board {
	b := &Board{
		history:  state.NewHistory(state.NewSnapshot()),
		tool:     ToolFreehand,
		style:    state.DefaultStyle(),
		measurer: fixedWidth(12),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OnChange registers fn to run after every change to the surface, the
// selection, the interaction state or the pen.
func (b *Board) OnChange(fn func()) {
	b.onChange = append(b.onChange, fn)
}

func (b *Board) changed() {
	for _, fn := range b.onChange {
		fn()
	}
}

// Elements returns the visible snapshot.
func (b *Board) Elements() state.Snapshot { return b.history.Current() }

// Action returns the interaction state.
func (b *Board) Action() Action { return b.action }

// Tool returns the active tool.
func (b *Board) Tool() Tool { return b.tool }

// Style returns the pen new elements are created with.
func (b *Board) Style() state.Style { return b.style }

// HistoryLen returns the number of recorded snapshots.
func (b *Board) HistoryLen() int { return b.history.Len() }

// HistoryIndex returns the position of the visible snapshot.
func (b *Board) HistoryIndex() int { return b.history.Index() }

// Selected returns the element of the gesture in progress.
func (b *Board) Selected() (Selection, bool) {
	if b.selected == nil {
		return Selection{}, false
	}
	return *b.selected, true
}

// Editing returns the id of the text element being typed into.
func (b *Board) Editing() (int, bool) {
	if b.action != ActionWriting || b.selected == nil {
		return 0, false
	}
	return b.selected.Element.ID(), true
}

// SetTool switches the active tool.
func (b *Board) SetTool(t Tool) error {
	if t != ToolSelect {
		if _, ok := toolKinds[t]; !ok {
			return &state.ModelError{Op: "set tool", Value: int(t)}
		}
	}
	b.tool = t
	b.changed()
	return nil
}

// SetLineColor sets the stroke colour of new elements.
func (b *Board) SetLineColor(c color.NRGBA) {
	b.style.Stroke = c
	b.changed()
}

// SetFillColor sets the fill colour of new rectangles.
func (b *Board) SetFillColor(c color.NRGBA) {
	b.style.Fill = c
	b.changed()
}

// SetLineWidth sets the freehand stroke width. Non-positive widths are
// ignored.
func (b *Board) SetLineWidth(w float64) {
	if w <= 0 {
		return
	}
	b.style.Width = w
	b.changed()
}

// CursorAt returns the cursor to show at (x,y). Only the select tool has
// region feedback.
func (b *Board) CursorAt(x, y float64) Cursor {
	if b.tool != ToolSelect {
		return CursorDefault
	}
	hit, ok := FindTopmostAt(x, y, b.Elements())
	if !ok {
		return CursorDefault
	}
	return CursorFor(hit.Region)
}

// Dispatch feeds one normalized event into the state machine.
func (b *Board) Dispatch(ev Event) {
	switch ev.Type {
	case PointerDown:
		b.PointerDown(ev.X, ev.Y)
	case PointerMove:
		b.PointerMove(ev.X, ev.Y)
	case PointerUp:
		if ev.Positionless {
			b.PointerUp(b.last.X, b.last.Y)
		} else {
			b.PointerUp(ev.X, ev.Y)
		}
	case Blur:
		b.Blur(ev.Text)
	case Key:
		b.HandleKey(ev.Chord)
	default:
		panic(state.Unrecognized("dispatch", ev.Type))
	}
}

// HandleKey runs the undo/redo shortcuts. It reports whether c was one.
func (b *Board) HandleKey(c Chord) bool {
	switch ShortcutFor(c) {
	case UndoShortcut:
		b.Undo()
	case RedoShortcut:
		b.Redo()
	default:
		return false
	}
	return true
}

// Undo steps the surface back one snapshot. A gesture in progress is
// abandoned first.
func (b *Board) Undo() {
	b.abandon()
	if b.history.Undo() {
		log.Debugf("undo to step %d of %d", b.history.Index(), b.history.Len())
	}
	b.changed()
}

// Redo steps the surface forward one snapshot. A gesture in progress is
// abandoned first.
func (b *Board) Redo() {
	b.abandon()
	if b.history.Redo() {
		log.Debugf("redo to step %d of %d", b.history.Index(), b.history.Len())
	}
	b.changed()
}

// abandon drops the selection of an unfinished gesture. Its id may not
// exist in the snapshot history is about to show.
func (b *Board) abandon() {
	if b.action == ActionNone {
		return
	}
	log.Debugf("abandoning %s gesture", b.action)
	b.action = ActionNone
	b.selected = nil
}

func (b *Board) setAction(a Action) {
	if a != b.action {
		log.Debugf("%s -> %s", b.action, a)
	}
	b.action = a
}

// PointerDown starts a gesture at (x,y).
func (b *Board) PointerDown(x, y float64) {
	if b.action == ActionWriting {
		return
	}
	pt := geom.Pt(x, y)
	b.last = pt

	if b.tool == ToolSelect {
		b.grab(pt)
		return
	}

	kind, ok := toolKinds[b.tool]
	if !ok {
		panic(state.Unrecognized("pointer down", b.tool))
	}
	current := b.Elements()
	el, err := state.CreateElement(current.Len(), x, y, x, y, kind, b.style)
	if err != nil {
		panic(err)
	}
	if el == nil {
		// the sticky tool places nothing on the surface
		return
	}
	b.history.Commit(current.Append(el), false)
	b.selected = &Selection{Element: el, Down: pt}
	if kind == state.KindText {
		b.setAction(ActionWriting)
	} else {
		b.setAction(ActionDrawing)
	}
	b.changed()
}

func (b *Board) grab(pt vec.Vec2) {
	hit, ok := FindTopmostAt(pt.X, pt.Y, b.Elements())
	if !ok {
		return
	}
	sel := &Selection{Element: hit.Element, Region: hit.Region, Down: pt}
	switch e := hit.Element.(type) {
	case state.Freehand:
		sel.Offsets = make([]vec.Vec2, len(e.Points))
		for i, p := range e.Points {
			sel.Offsets[i] = pt.Sub(p)
		}
	case state.Line:
		sel.Offset = pt.Sub(geom.Pt(e.X1, e.Y1))
	case state.Rectangle:
		sel.Offset = pt.Sub(geom.Pt(e.X1, e.Y1))
	case state.Text:
		sel.Offset = pt.Sub(geom.Pt(e.X1, e.Y1))
	default:
		panic(state.Unrecognized("grab", e))
	}

	// The copy is the undo step for the whole move or resize; every update
	// until pointer-up overwrites it.
	b.history.Commit(b.Elements(), false)
	b.selected = sel
	if hit.Region == RegionInside {
		b.setAction(ActionMoving)
	} else {
		b.setAction(ActionResizing)
	}
	b.changed()
}

// PointerMove continues the gesture in progress.
func (b *Board) PointerMove(x, y float64) {
	pt := geom.Pt(x, y)
	if pt == b.last {
		return
	}
	b.last = pt

	var next state.Element
	switch b.action {
	case ActionDrawing:
		next = b.extend(pt)
	case ActionMoving:
		next = b.move(pt)
	case ActionResizing:
		next = b.resize(pt)
	default:
		return
	}
	b.history.Commit(b.Elements().Replace(next.ID(), next), true)
	b.changed()
}

// extend drags the far end of the element being drawn to pt.
func (b *Board) extend(pt vec.Vec2) state.Element {
	switch e := b.Elements().At(b.selected.Element.ID()).(type) {
	case state.Line:
		return e.At(e.X1, e.Y1, pt.X, pt.Y)
	case state.Rectangle:
		return e.At(e.X1, e.Y1, pt.X, pt.Y)
	case state.Freehand:
		e.Points = append(e.Points, pt)
		return e
	default:
		panic(state.Unrecognized("draw", e))
	}
}

// move translates the selected element rigidly so that the grab offset
// stays under the cursor.
func (b *Board) move(pt vec.Vec2) state.Element {
	s := b.selected
	nx, ny := pt.X-s.Offset.X, pt.Y-s.Offset.Y
	switch e := s.Element.(type) {
	case state.Freehand:
		points := make([]vec.Vec2, len(s.Offsets))
		for i, off := range s.Offsets {
			points[i] = pt.Sub(off)
		}
		e.Points = points
		return e
	case state.Line:
		return e.At(nx, ny, nx+e.X2-e.X1, ny+e.Y2-e.Y1)
	case state.Rectangle:
		return e.At(nx, ny, nx+e.X2-e.X1, ny+e.Y2-e.Y1)
	case state.Text:
		return b.placeText(e, nx, ny, e.Text)
	default:
		panic(state.Unrecognized("move", e))
	}
}

// resize moves the grabbed handle to pt and keeps the opposite one fixed.
func (b *Board) resize(pt vec.Vec2) state.Element {
	s := b.selected
	switch e := s.Element.(type) {
	case state.Line:
		switch s.Region {
		case RegionStart:
			return e.At(pt.X, pt.Y, e.X2, e.Y2)
		case RegionEnd:
			return e.At(e.X1, e.Y1, pt.X, pt.Y)
		}
	case state.Rectangle:
		switch s.Region {
		case RegionTopLeft:
			return e.At(pt.X, pt.Y, e.X2, e.Y2)
		case RegionTopRight:
			return e.At(e.X1, pt.Y, pt.X, e.Y2)
		case RegionBottomLeft:
			return e.At(pt.X, e.Y1, e.X2, pt.Y)
		case RegionBottomRight:
			return e.At(e.X1, e.Y1, pt.X, pt.Y)
		}
	}
	panic(state.Unrecognized("resize", s.Region))
}

func (b *Board) placeText(t state.Text, x, y float64, text string) state.Text {
	t.X1, t.Y1 = x, y
	t.X2 = x + b.measurer.MeasureText(text)
	t.Y2 = y + state.TextHeight
	t.Text = text
	return t
}

// PointerUp ends the gesture in progress. Lines and rectangles are
// normalized into the gesture's undo step. Releasing a text element that
// was not moved opens it for editing instead.
func (b *Board) PointerUp(x, y float64) {
	pt := geom.Pt(x, y)
	b.last = pt
	if s := b.selected; s != nil {
		kind := s.Element.Kind()
		if kind == state.KindText && b.action == ActionMoving && pt == s.Down {
			b.setAction(ActionWriting)
			b.changed()
			return
		}
		if (b.action == ActionDrawing || b.action == ActionResizing) && kind.Normalizes() {
			id := s.Element.ID()
			current := b.Elements()
			b.history.Commit(current.Replace(id, state.Normalize(current.At(id))), true)
		}
	}
	if b.action == ActionWriting {
		return
	}
	b.setAction(ActionNone)
	b.selected = nil
	b.changed()
}

// Blur commits the text typed into the element being edited.
func (b *Board) Blur(text string) {
	if b.action != ActionWriting || b.selected == nil {
		return
	}
	t, ok := b.selected.Element.(state.Text)
	if !ok {
		panic(state.Unrecognized("blur", b.selected.Element))
	}
	b.setAction(ActionNone)
	b.selected = nil
	next := b.placeText(t, t.X1, t.Y1, text)
	b.history.Commit(b.Elements().Replace(next.ID(), next), true)
	b.changed()
}
