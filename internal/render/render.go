// Package render paints a snapshot of board elements onto a raster
// surface.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/path"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/rough"
	"MyWhiteboard/internal/state"
)

var log = logging.Logger("render")

// FontSize is the pixel size text elements are drawn and measured at.
const FontSize = 24

// NoEditing tells Render that no text element is being written.
const NoEditing = -1

var textColor = color.NRGBA{A: 0xff}

// Renderer draws elements onto a gg context. It is not safe for
// concurrent use.
type Renderer struct {
	dc         *gg.Context
	face       font.Face
	background color.Color
	backdrop   image.Image
}

// NewSurface returns an empty drawing surface of the given size.
func NewSurface(width, height int) *gg.Context {
	return gg.NewContext(max(width, 1), max(height, 1))
}

// New returns a renderer drawing onto dc with a white background.
func New(dc *gg.Context) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{
		dc:         dc,
		face:       truetype.NewFace(f, &truetype.Options{Size: FontSize}),
		background: color.White,
	}, nil
}

// Surface returns the current drawing surface.
func (r *Renderer) Surface() *gg.Context { return r.dc }

// Image returns the pixels of the last frame.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// Resize replaces the surface with an empty one of the given size.
func (r *Renderer) Resize(width, height int) {
	if r.dc.Width() == width && r.dc.Height() == height {
		return
	}
	r.dc = NewSurface(width, height)
}

// SetBackground sets the colour painted under every frame.
func (r *Renderer) SetBackground(c color.Color) { r.background = c }

// SetBackdrop sets an image painted at the origin under every frame.
// A nil image removes it.
func (r *Renderer) SetBackdrop(img image.Image) { r.backdrop = img }

// MeasureText returns the width s takes when drawn as a text element.
func (r *Renderer) MeasureText(s string) float64 {
	r.dc.SetFontFace(r.face)
	w, _ := r.dc.MeasureString(s)
	return w
}

// RenderBoard draws the visible snapshot of b, leaving out the text element
// that is being written.
func (r *Renderer) RenderBoard(b *board.Board) {
	editing := NoEditing
	if id, ok := b.Editing(); ok {
		editing = id
	}
	r.Render(b.Elements(), editing)
}

// Render clears the surface and draws every element of s in slot order,
// except the one with id editing.
func (r *Renderer) Render(s state.Snapshot, editing int) {
	dc := r.dc
	dc.SetColor(r.background)
	dc.Clear()
	if r.backdrop != nil {
		dc.DrawImage(r.backdrop, 0, 0)
	}
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for id, e := range s.All() {
		if id == editing {
			continue
		}
		r.draw(e)
	}
	log.Debugf("rendered %d elements", s.Len())
}

func (r *Renderer) draw(e state.Element) {
	dc := r.dc
	switch e := e.(type) {
	case state.Line:
		r.drawRough(e.Shape)
	case state.Rectangle:
		r.drawRough(e.Shape)
	case state.Freehand:
		if len(e.Points) == 0 {
			return
		}
		replay(dc, OutlinePath(Outline(e.Points, e.Style.Width)))
		dc.SetColor(e.Style.Stroke)
		dc.Fill()
	case state.Text:
		dc.SetFontFace(r.face)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(e.Text, e.X1, e.Y1, 0, 0.5)
	case state.Sticky:
		// sticky notes live in their own panel
	default:
		panic(state.Unrecognized("render", e))
	}
}

func (r *Renderer) drawRough(d rough.Drawable) {
	dc := r.dc
	for _, set := range d.Sets {
		dc.NewSubPath()
		for _, op := range set.Ops {
			switch op.Kind {
			case rough.OpMove:
				dc.MoveTo(op.Pts[0].X, op.Pts[0].Y)
			case rough.OpLine:
				dc.LineTo(op.Pts[0].X, op.Pts[0].Y)
			case rough.OpCurve:
				dc.CubicTo(op.Pts[0].X, op.Pts[0].Y, op.Pts[1].X, op.Pts[1].Y, op.Pts[2].X, op.Pts[2].Y)
			}
		}
		switch set.Kind {
		case rough.SetHachure:
			dc.SetColor(d.Fill)
			dc.SetLineWidth(d.StrokeWidth / 2)
		default:
			dc.SetColor(d.Stroke)
			dc.SetLineWidth(d.StrokeWidth)
		}
		dc.Stroke()
	}
}

// replay copies p into the current path of dc.
func replay(dc *gg.Context, p *path.Data) {
	dc.NewSubPath()
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			dc.ClosePath()
		}
	}
}
