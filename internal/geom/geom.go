// Package geom holds the small amount of plane geometry the whiteboard needs
// for hit-testing: distances, handle proximity, segment proximity and
// axis-aligned bounds.
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Hit-test tolerances in surface pixels. Freehand strokes get a wider band
// than plain lines because they are drawn visibly thick.
const (
	HandleTolerance   = 5.0
	LineTolerance     = 1.0
	FreehandTolerance = 5.0
)

// Pt is shorthand for a vec.Vec2 literal.
func Pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// IsNear reports whether (px,py) lies within tolerance of (qx,qy) on both
// axes. It is a box test, not a circle.
func IsNear(px, py, qx, qy, tolerance float64) bool {
	return math.Abs(px-qx) < tolerance && math.Abs(py-qy) < tolerance
}

// PointOnSegment reports whether (px,py) lies on the segment from (x1,y1) to
// (x2,y2). A point is on the segment when the detour a→p→b is less than
// tolerance longer than a→b.
func PointOnSegment(x1, y1, x2, y2, px, py, tolerance float64) bool {
	a, b, p := Pt(x1, y1), Pt(x2, y2), Pt(px, py)
	offset := Distance(a, b) - (Distance(a, p) + Distance(b, p))
	return math.Abs(offset) < tolerance
}
