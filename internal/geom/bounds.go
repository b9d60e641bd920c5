package geom

// Bounds is an axis-aligned box given by two corners. The corners may be in
// any order until Canon is applied.
type Bounds struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Canon returns the same box with (X1,Y1) as the minimum corner and (X2,Y2)
// as the maximum corner.
func (b Bounds) Canon() Bounds {
	return Bounds{
		X1: min(b.X1, b.X2),
		Y1: min(b.Y1, b.Y2),
		X2: max(b.X1, b.X2),
		Y2: max(b.Y1, b.Y2),
	}
}

// Contains reports whether (x,y) lies inside the box, edges included. The
// box is used as stored: an uncanonical box contains nothing off its edges.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// Width returns X2-X1.
func (b Bounds) Width() float64 { return b.X2 - b.X1 }

// Height returns Y2-Y1.
func (b Bounds) Height() float64 { return b.Y2 - b.Y1 }
