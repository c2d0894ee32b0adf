package geomkernel

import (
	"math"

	"github.com/inkforge/vecpath"
)

// simplifyPolyline reduces a polyline with the Ramer-Douglas-Peucker
// algorithm: the endpoints are kept, and interior points survive only
// while some point deviates from the chord by more than tol.
func simplifyPolyline(points []vecpath.Point, tol float64) []vecpath.Point {
	if len(points) < 3 || tol <= 0 {
		out := make([]vecpath.Point, len(points))
		copy(out, points)
		return out
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	rdp(points, 0, len(points)-1, tol, keep)

	out := make([]vecpath.Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func rdp(points []vecpath.Point, first, last int, tol float64, keep []bool) {
	if last-first < 2 {
		return
	}
	maxDist := 0.0
	maxIdx := -1
	for i := first + 1; i < last; i++ {
		d := distToSegment(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxIdx < 0 || maxDist <= tol {
		return
	}
	keep[maxIdx] = true
	rdp(points, first, maxIdx, tol, keep)
	rdp(points, maxIdx, last, tol, keep)
}

// distToSegment returns the distance from p to the segment a-b.
func distToSegment(p, a, b vecpath.Point) float64 {
	ab := a.To(b)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := a.To(p).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t))
}
