package geomkernel

import (
	"math"

	"github.com/inkforge/vecpath"
)

// Adaptive cubic Bezier flattening via de Casteljau subdivision.

type cubicBez struct {
	p0, p1, p2, p3 vecpath.Point
}

// subdivide splits the curve at t=0.5 into two halves.
func (c cubicBez) subdivide() (cubicBez, cubicBez) {
	p01 := c.p0.Lerp(c.p1, 0.5)
	p12 := c.p1.Lerp(c.p2, 0.5)
	p23 := c.p2.Lerp(c.p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return cubicBez{c.p0, p01, p012, mid}, cubicBez{mid, p123, p23, c.p3}
}

// flatness returns the standard control-point-to-chord distance metric.
func (c cubicBez) flatness() float64 {
	ux := 3.0*c.p1.X - 2.0*c.p0.X - c.p3.X
	uy := 3.0*c.p1.Y - 2.0*c.p0.Y - c.p3.Y
	vx := 3.0*c.p2.X - c.p0.X - 2.0*c.p3.X
	vy := 3.0*c.p2.Y - c.p0.Y - 2.0*c.p3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// flattenCubic recursively subdivides the curve, emitting endpoints of
// flat-enough pieces. The start point is not emitted.
func flattenCubic(c cubicBez, tolSq float64, emit func(vecpath.Point)) {
	if c.flatness() <= tolSq*16 { // adjust for the metric scale
		emit(c.p3)
		return
	}
	c1, c2 := c.subdivide()
	flattenCubic(c1, tolSq, emit)
	flattenCubic(c2, tolSq, emit)
}

// flattenSubPath converts one subpath to a polyline. A trailing
// ClosePath appends the start point so the polyline ends where it began.
func flattenSubPath(sp vecpath.SubPath, tol float64) []vecpath.Point {
	if tol <= 0 {
		tol = 0.1
	}
	tolSq := tol * tol
	var out []vecpath.Point
	var current, start vecpath.Point
	for _, c := range sp {
		switch cmd := c.(type) {
		case vecpath.MoveTo:
			out = append(out, cmd.Position)
			start = cmd.Position
			current = cmd.Position
		case vecpath.LineTo:
			out = append(out, cmd.Position)
			current = cmd.Position
		case vecpath.CurveTo:
			flattenCubic(cubicBez{current, cmd.Control1, cmd.Control2, cmd.Position}, tolSq, func(p vecpath.Point) {
				out = append(out, p)
			})
			current = cmd.Position
		case vecpath.ClosePath:
			if current != start {
				out = append(out, start)
			}
			current = start
		}
	}
	return out
}
