package state

import (
	"image/color"
	"strings"

	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/geom"
	"MyWhiteboard/internal/rough"
)

// Kind identifies an element variant.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindFreehand
	KindText
	KindSticky
)

var kindNames = [...]string{"line", "rectangle", "freehand", "text", "sticky"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the five known variants.
func (k Kind) Valid() bool {
	return k >= KindLine && k <= KindSticky
}

// Normalizes reports whether elements of this kind get their coordinates
// canonicalized when a gesture ends.
func (k Kind) Normalizes() bool {
	return k == KindLine || k == KindRectangle
}

// ParseKind accepts the variant names plus the toolbar aliases "square" and
// "pencil".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return KindLine, nil
	case "rectangle", "square":
		return KindRectangle, nil
	case "freehand", "pencil":
		return KindFreehand, nil
	case "text":
		return KindText, nil
	case "sticky":
		return KindSticky, nil
	}
	return 0, &ModelError{Op: "parse kind", Value: s}
}

// Style is the pen an element is created with.
type Style struct {
	Stroke color.NRGBA
	Fill   color.NRGBA
	Width  float64
}

// DefaultStyle is black ink, white fill, 3px freehand width.
func DefaultStyle() Style {
	return Style{
		Stroke: color.NRGBA{A: 0xff},
		Fill:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Width:  3,
	}
}

// TextHeight is the fixed line height of text elements.
const TextHeight = 24

// Element is one drawable on the board. The set of implementations is
// closed: Line, Rectangle, Freehand, Text and Sticky.
type Element interface {
	// ID is the element's slot in the snapshot that holds it.
	ID() int
	Kind() Kind
	// Clone returns a copy that shares no memory with the receiver.
	Clone() Element
	element()
}

// Line is a straight sketchy line.
type Line struct {
	Index          int
	X1, Y1, X2, Y2 float64
	Style          Style
	Shape          rough.Drawable
}

// Rectangle is a filled sketchy rectangle.
type Rectangle struct {
	Index          int
	X1, Y1, X2, Y2 float64
	Style          Style
	Shape          rough.Drawable
}

// Freehand is a pen stroke. Points are kept in insertion order.
type Freehand struct {
	Index  int
	Points []vec.Vec2
	Style  Style
}

// Text is a single line of text anchored at (X1,Y1).
type Text struct {
	Index          int
	X1, Y1, X2, Y2 float64
	Text           string
}

// Sticky is reserved. Sticky notes live in the note collection, so this
// variant never appears on the surface.
type Sticky struct {
	Index int
}

func (l Line) ID() int      { return l.Index }
func (r Rectangle) ID() int { return r.Index }
func (f Freehand) ID() int  { return f.Index }
func (t Text) ID() int      { return t.Index }
func (s Sticky) ID() int    { return s.Index }

func (Line) Kind() Kind      { return KindLine }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Freehand) Kind() Kind  { return KindFreehand }
func (Text) Kind() Kind      { return KindText }
func (Sticky) Kind() Kind    { return KindSticky }

// Shapes are never modified after generation, so copies share them.
func (l Line) Clone() Element      { return l }
func (r Rectangle) Clone() Element { return r }

func (f Freehand) Clone() Element {
	f.Points = append([]vec.Vec2(nil), f.Points...)
	return f
}

func (t Text) Clone() Element   { return t }
func (s Sticky) Clone() Element { return s }

func (Line) element()      {}
func (Rectangle) element() {}
func (Freehand) element()  {}
func (Text) element()      {}
func (Sticky) element()    {}

var generator = rough.NewGenerator()

// shapeSeed keeps an element's jitter stable across redraws and moves.
func shapeSeed(id int) uint64 {
	return uint64(id) + 1
}

// At returns l moved to the given endpoints with its shape regenerated.
func (l Line) At(x1, y1, x2, y2 float64) Line {
	l.X1, l.Y1, l.X2, l.Y2 = x1, y1, x2, y2
	l.Shape = generator.Line(x1, y1, x2, y2, rough.Options{
		Stroke: l.Style.Stroke,
		Seed:   shapeSeed(l.Index),
	})
	return l
}

// At returns r with the given corners and its shape regenerated.
func (r Rectangle) At(x1, y1, x2, y2 float64) Rectangle {
	r.X1, r.Y1, r.X2, r.Y2 = x1, y1, x2, y2
	r.Shape = generator.Rectangle(x1, y1, x2-x1, y2-y1, rough.Options{
		Stroke:     r.Style.Stroke,
		Fill:       r.Style.Fill,
		Filled:     true,
		HachureGap: 1,
		Seed:       shapeSeed(r.Index),
	})
	return r
}

// Bounds returns the text's hit box.
func (t Text) Bounds() geom.Bounds {
	return geom.Bounds{X1: t.X1, Y1: t.Y1, X2: t.X2, Y2: t.Y2}
}

// Bounds returns the rectangle's box as stored.
func (r Rectangle) Bounds() geom.Bounds {
	return geom.Bounds{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

// CreateElement builds a new element of the given kind in slot id. Lines and
// rectangles come with their sketch shape, freehand strokes start with the
// single point (x1,y1) and text starts empty. Sticky yields a nil element
// and no error: stickies are not part of the surface.
func CreateElement(id int, x1, y1, x2, y2 float64, kind Kind, style Style) (Element, error) {
	switch kind {
	case KindLine:
		return Line{Index: id, Style: style}.At(x1, y1, x2, y2), nil
	case KindRectangle:
		return Rectangle{Index: id, Style: style}.At(x1, y1, x2, y2), nil
	case KindFreehand:
		return Freehand{Index: id, Points: []vec.Vec2{geom.Pt(x1, y1)}, Style: style}, nil
	case KindText:
		return Text{Index: id, X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
	case KindSticky:
		return nil, nil
	}
	return nil, &ModelError{Op: "create element", Value: kind}
}

// Normalize canonicalizes stored coordinates: rectangles get (x1,y1) as the
// minimum corner, lines run left to right (top to bottom when vertical).
// Other variants are returned unchanged. Apply it once, when a gesture
// ends; live drags rely on the raw drag direction.
func Normalize(e Element) Element {
	switch e := e.(type) {
	case Rectangle:
		b := e.Bounds().Canon()
		return e.At(b.X1, b.Y1, b.X2, b.Y2)
	case Line:
		if e.X1 < e.X2 || (e.X1 == e.X2 && e.Y1 < e.Y2) {
			return e.At(e.X1, e.Y1, e.X2, e.Y2)
		}
		return e.At(e.X2, e.Y2, e.X1, e.Y1)
	case Freehand, Text, Sticky:
		return e
	}
	panic(Unrecognized("normalize", e))
}
