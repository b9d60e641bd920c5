package board

import (
	"MyWhiteboard/internal/geom"
	"MyWhiteboard/internal/state"
)

// Region is the part of an element under the cursor.
type Region int

const (
	RegionNone Region = iota
	RegionStart
	RegionEnd
	RegionTopLeft
	RegionTopRight
	RegionBottomLeft
	RegionBottomRight
	RegionInside
)

var regionNames = [...]string{"none", "start", "end", "top-left", "top-right", "bottom-left", "bottom-right", "inside"}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "unknown"
	}
	return regionNames[r]
}

// IsHandle reports whether r is a resize handle.
func (r Region) IsHandle() bool {
	return r != RegionNone && r != RegionInside
}

func near(x, y, hx, hy float64, r Region) Region {
	if geom.IsNear(x, y, hx, hy, geom.HandleTolerance) {
		return r
	}
	return RegionNone
}

func first(regions ...Region) Region {
	for _, r := range regions {
		if r != RegionNone {
			return r
		}
	}
	return RegionNone
}

// ResolvePosition returns the region of e under (x,y), or RegionNone.
// Handles win over the body.
func ResolvePosition(x, y float64, e state.Element) Region {
	switch e := e.(type) {
	case state.Line:
		on := RegionNone
		if geom.PointOnSegment(e.X1, e.Y1, e.X2, e.Y2, x, y, geom.LineTolerance) {
			on = RegionInside
		}
		return first(
			near(x, y, e.X1, e.Y1, RegionStart),
			near(x, y, e.X2, e.Y2, RegionEnd),
			on,
		)
	case state.Rectangle:
		inside := RegionNone
		if e.Bounds().Contains(x, y) {
			inside = RegionInside
		}
		return first(
			near(x, y, e.X1, e.Y1, RegionTopLeft),
			near(x, y, e.X2, e.Y1, RegionTopRight),
			near(x, y, e.X1, e.Y2, RegionBottomLeft),
			near(x, y, e.X2, e.Y2, RegionBottomRight),
			inside,
		)
	case state.Freehand:
		for i := 1; i < len(e.Points); i++ {
			a, b := e.Points[i-1], e.Points[i]
			if geom.PointOnSegment(a.X, a.Y, b.X, b.Y, x, y, geom.FreehandTolerance) {
				return RegionInside
			}
		}
		return RegionNone
	case state.Text:
		if e.Bounds().Contains(x, y) {
			return RegionInside
		}
		return RegionNone
	case state.Sticky:
		return RegionNone
	}
	panic(state.Unrecognized("resolve position", e))
}

// Hit is an element found under the cursor together with the region hit.
type Hit struct {
	Element state.Element
	Region  Region
}

// FindTopmostAt scans s in slot order and returns the first element under
// (x,y). Slot order is the only z-order: when shapes overlap, the one
// created first wins, even though the later one is painted on top.
func FindTopmostAt(x, y float64, s state.Snapshot) (Hit, bool) {
	for _, e := range s.All() {
		if r := ResolvePosition(x, y, e); r != RegionNone {
			return Hit{Element: e.Clone(), Region: r}, true
		}
	}
	return Hit{}, false
}

// Cursor is the pointer shape shown over a region.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeNWSE
	CursorResizeNESW
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeNWSE:
		return "nwse-resize"
	case CursorResizeNESW:
		return "nesw-resize"
	}
	return "default"
}

// CursorFor returns the cursor for a hit region.
func CursorFor(r Region) Cursor {
	switch r {
	case RegionTopLeft, RegionBottomRight, RegionStart, RegionEnd:
		return CursorResizeNWSE
	case RegionTopRight, RegionBottomLeft:
		return CursorResizeNESW
	case RegionInside:
		return CursorMove
	}
	return CursorDefault
}
