// Package rough generates hand-drawn looking shape descriptions. A Drawable
// is a list of pen operations; it carries no drawing state and can be
// replayed onto any surface.
package rough

import (
	"image/color"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/geom"
)

// OpKind identifies a pen operation.
type OpKind int

const (
	OpMove  OpKind = iota // one point
	OpLine                // one point
	OpCurve               // cubic: two control points, then the end point
)

// Op is a single pen operation.
type Op struct {
	Kind OpKind
	Pts  []vec.Vec2
}

// SetKind tells a surface how to paint an OpSet.
type SetKind int

const (
	SetOutline SetKind = iota
	SetHachure
)

// OpSet is a group of operations painted with one pen.
type OpSet struct {
	Kind SetKind
	Ops  []Op
}

// Drawable is the renderer-ready description of a sketchy shape. It is not
// modified once generated.
type Drawable struct {
	Shape       string
	Stroke      color.NRGBA
	StrokeWidth float64
	Fill        color.NRGBA
	Filled      bool
	Sets        []OpSet
}

// Options control the look of generated shapes. Zero fields take the
// generator defaults.
type Options struct {
	Stroke       color.NRGBA
	StrokeWidth  float64
	Fill         color.NRGBA
	Filled       bool
	Roughness    float64
	Bowing       float64
	MaxOffset    float64
	HachureGap   float64
	HachureAngle float64 // degrees
	Seed         uint64
}

// Generator produces Drawables. The zero value is not usable; call
// NewGenerator.
type Generator struct {
	defaults Options
}

// NewGenerator returns a generator with the classic sketch defaults.
func NewGenerator() *Generator {
	return &Generator{defaults: Options{
		Stroke:       color.NRGBA{A: 0xff},
		StrokeWidth:  1,
		Roughness:    1,
		Bowing:       1,
		MaxOffset:    2,
		HachureAngle: -41,
	}}
}

func (g *Generator) resolve(o Options) Options {
	d := g.defaults
	if o.Stroke != (color.NRGBA{}) {
		d.Stroke = o.Stroke
	}
	if o.StrokeWidth > 0 {
		d.StrokeWidth = o.StrokeWidth
	}
	if o.Roughness > 0 {
		d.Roughness = o.Roughness
	}
	if o.Bowing > 0 {
		d.Bowing = o.Bowing
	}
	if o.MaxOffset > 0 {
		d.MaxOffset = o.MaxOffset
	}
	if o.HachureAngle != 0 {
		d.HachureAngle = o.HachureAngle
	}
	d.HachureGap = o.HachureGap
	if d.HachureGap <= 0 {
		d.HachureGap = d.StrokeWidth * 4
	}
	d.Fill = o.Fill
	d.Filled = o.Filled
	d.Seed = o.Seed
	return d
}

// Line describes a sketchy line from (x1,y1) to (x2,y2).
func (g *Generator) Line(x1, y1, x2, y2 float64, opts Options) Drawable {
	o := g.resolve(opts)
	p := newPen(o)
	return Drawable{
		Shape:       "line",
		Stroke:      o.Stroke,
		StrokeWidth: o.StrokeWidth,
		Sets:        []OpSet{{Kind: SetOutline, Ops: p.doubleLine(x1, y1, x2, y2)}},
	}
}

// Rectangle describes a sketchy rectangle with corner (x,y) and the given
// width and height. Negative sizes are allowed.
func (g *Generator) Rectangle(x, y, w, h float64, opts Options) Drawable {
	o := g.resolve(opts)
	p := newPen(o)
	d := Drawable{
		Shape:       "rectangle",
		Stroke:      o.Stroke,
		StrokeWidth: o.StrokeWidth,
		Fill:        o.Fill,
		Filled:      o.Filled,
	}
	if o.Filled {
		box := geom.Bounds{X1: x, Y1: y, X2: x + w, Y2: y + h}.Canon()
		d.Sets = append(d.Sets, OpSet{Kind: SetHachure, Ops: p.hachure(box)})
	}
	corners := [4]vec.Vec2{geom.Pt(x, y), geom.Pt(x+w, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h)}
	var outline []Op
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		outline = append(outline, p.doubleLine(a.X, a.Y, b.X, b.Y)...)
	}
	d.Sets = append(d.Sets, OpSet{Kind: SetOutline, Ops: outline})
	return d
}

// pen carries the random source for one shape so that a given seed always
// yields the same strokes.
type pen struct {
	o   Options
	rnd *rand.Rand
}

func newPen(o Options) *pen {
	return &pen{o: o, rnd: rand.New(rand.NewPCG(o.Seed, 0x5eed))}
}

func (p *pen) offset(x, gain float64) float64 {
	return p.o.Roughness * gain * (p.rnd.Float64()*2*x - x)
}

func (p *pen) doubleLine(x1, y1, x2, y2 float64) []Op {
	ops := p.line(x1, y1, x2, y2, false)
	return append(ops, p.line(x1, y1, x2, y2, true)...)
}

// line bends a segment into one cubic whose control points wander around
// the straight path. The overlay pass wanders half as far.
func (p *pen) line(x1, y1, x2, y2 float64, overlay bool) []Op {
	length := math.Hypot(x2-x1, y2-y1)
	gain := 1.0
	switch {
	case length > 500:
		gain = 0.4
	case length >= 200:
		gain = -0.0016668*length + 1.233334
	}

	off := p.o.MaxOffset
	if off*off*100 > length*length {
		off = length / 10
	}
	half := off / 2
	diverge := 0.2 + p.rnd.Float64()*0.2

	midX := p.o.Bowing * p.o.MaxOffset * (y2 - y1) / 200
	midY := p.o.Bowing * p.o.MaxOffset * (x1 - x2) / 200
	midX = p.offset(midX, gain)
	midY = p.offset(midY, gain)

	jitter := func() float64 { return p.offset(off, gain) }
	if overlay {
		jitter = func() float64 { return p.offset(half, gain) }
	}

	start := geom.Pt(x1+jitter(), y1+jitter())
	c1 := geom.Pt(midX+x1+(x2-x1)*diverge+jitter(), midY+y1+(y2-y1)*diverge+jitter())
	c2 := geom.Pt(midX+x1+2*(x2-x1)*diverge+jitter(), midY+y1+2*(y2-y1)*diverge+jitter())
	end := geom.Pt(x2+jitter(), y2+jitter())
	return []Op{
		{Kind: OpMove, Pts: []vec.Vec2{start}},
		{Kind: OpCurve, Pts: []vec.Vec2{c1, c2, end}},
	}
}

// hachure fills box with parallel rough strokes HachureGap apart.
func (p *pen) hachure(box geom.Bounds) []Op {
	if box.Width() == 0 || box.Height() == 0 {
		return nil
	}
	rad := p.o.HachureAngle * math.Pi / 180
	dir := geom.Pt(math.Cos(rad), math.Sin(rad))
	normal := geom.Pt(-dir.Y, dir.X)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range [4]vec.Vec2{
		geom.Pt(box.X1, box.Y1), geom.Pt(box.X2, box.Y1),
		geom.Pt(box.X2, box.Y2), geom.Pt(box.X1, box.Y2),
	} {
		d := c.X*normal.X + c.Y*normal.Y
		lo, hi = min(lo, d), max(hi, d)
	}

	var ops []Op
	for c := lo + p.o.HachureGap/2; c < hi; c += p.o.HachureGap {
		a, b, ok := clip(normal.Mul(c), dir, box)
		if !ok {
			continue
		}
		ops = append(ops, p.doubleLine(a.X, a.Y, b.X, b.Y)...)
	}
	return ops
}

// clip intersects the infinite line through p0 with direction d against box.
func clip(p0, d vec.Vec2, box geom.Bounds) (vec.Vec2, vec.Vec2, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	axes := [2]struct{ p, d, lo, hi float64 }{
		{p0.X, d.X, box.X1, box.X2},
		{p0.Y, d.Y, box.Y1, box.Y2},
	}
	for _, ax := range axes {
		if ax.d == 0 {
			if ax.p < ax.lo || ax.p > ax.hi {
				return vec.Vec2{}, vec.Vec2{}, false
			}
			continue
		}
		t1, t2 := (ax.lo-ax.p)/ax.d, (ax.hi-ax.p)/ax.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin, tMax = max(tMin, t1), min(tMax, t2)
	}
	if tMin >= tMax {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	return p0.Add(d.Mul(tMin)), p0.Add(d.Mul(tMax)), true
}
