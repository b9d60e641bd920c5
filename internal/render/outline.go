package render

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// capSteps is the number of segments in each half-circle stroke cap.
const capSteps = 8

// Outline turns the centre line of a freehand stroke into the polygon of
// a stroke of constant width size, with round caps at both ends. The
// result is a closed loop in drawing order.
func Outline(points []vec.Vec2, size float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, len(points))
	for _, p := range points {
		if len(pts) == 0 || pts[len(pts)-1] != p {
			pts = append(pts, p)
		}
	}
	r := size / 2
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return arc(pts[0], r, 0, 2*math.Pi, 2*capSteps)
	}

	n := len(pts)
	left := make([]vec.Vec2, n)
	right := make([]vec.Vec2, n)
	normals := make([]vec.Vec2, n)
	var prev vec.Vec2
	for i, p := range pts {
		var dir vec.Vec2
		switch i {
		case 0:
			dir = pts[1].Sub(p)
		case n - 1:
			dir = p.Sub(pts[n-2])
		default:
			dir = pts[i+1].Sub(pts[i-1])
		}
		if l := dir.Length(); l > 0 {
			dir = dir.Mul(1 / l)
		} else {
			// the stroke doubled back on itself
			dir = prev
		}
		prev = dir
		normals[i] = vec.Vec2{X: -dir.Y, Y: dir.X}
		left[i] = p.Add(normals[i].Mul(r))
		right[i] = p.Sub(normals[i].Mul(r))
	}

	out := make([]vec.Vec2, 0, 2*n+2*capSteps)
	out = append(out, left...)
	end := math.Atan2(normals[n-1].Y, normals[n-1].X)
	out = append(out, arc(pts[n-1], r, end, -math.Pi, capSteps)[1:]...)
	for i := n - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	start := math.Atan2(normals[0].Y, normals[0].X) + math.Pi
	out = append(out, arc(pts[0], r, start, -math.Pi, capSteps)[1:capSteps]...)
	return out
}

// arc returns steps+1 points on the circle around c, starting at angle from
// and turning by sweep.
func arc(c vec.Vec2, r, from, sweep float64, steps int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, steps+1)
	for k := 0; k <= steps; k++ {
		a := from + sweep*float64(k)/float64(steps)
		pts = append(pts, c.Add(vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(r)))
	}
	return pts
}

// OutlinePath smooths a closed outline into a path of quadratic curves: each
// outline point becomes the control point of a curve that ends halfway to
// the next point.
func OutlinePath(outline []vec.Vec2) *path.Data {
	p := &path.Data{}
	n := len(outline)
	if n == 0 {
		return p
	}
	p.MoveTo(outline[0])
	for i, a := range outline {
		b := outline[(i+1)%n]
		p.QuadTo(a, a.Add(b).Mul(0.5))
	}
	return p.Close()
}
