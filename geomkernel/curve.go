package geomkernel

import (
	"sort"

	"github.com/inkforge/vecpath"
)

// polylineCurve is an arc-length parameterized curve over a polyline:
// a cumulative length table plus segment lookup. Distances outside
// [0, Length] clamp to the endpoints.
type polylineCurve struct {
	pts []vecpath.Point
	cum []float64 // cum[i] is the arc length up to pts[i]
}

func newPolylineCurve(pts []vecpath.Point) *polylineCurve {
	c := &polylineCurve{
		pts: make([]vecpath.Point, len(pts)),
		cum: make([]float64, len(pts)),
	}
	copy(c.pts, pts)
	for i := 1; i < len(pts); i++ {
		c.cum[i] = c.cum[i-1] + pts[i-1].Distance(pts[i])
	}
	return c
}

func (c *polylineCurve) Length() float64 {
	if len(c.cum) == 0 {
		return 0
	}
	return c.cum[len(c.cum)-1]
}

// segmentAt locates the segment containing the clamped distance and the
// interpolation factor within it. Zero-length segments are skipped.
func (c *polylineCurve) segmentAt(dist float64) (int, float64) {
	n := len(c.pts)
	if n < 2 {
		return 0, 0
	}
	total := c.Length()
	if dist <= 0 {
		return 0, 0
	}
	if dist >= total {
		return n - 2, 1
	}
	// First index with cum >= dist; the segment ends there.
	i := sort.SearchFloat64s(c.cum, dist)
	if i == 0 {
		i = 1
	}
	seg := i - 1
	span := c.cum[i] - c.cum[seg]
	if span == 0 {
		return seg, 0
	}
	return seg, (dist - c.cum[seg]) / span
}

func (c *polylineCurve) PointAt(dist float64) vecpath.Point {
	if len(c.pts) == 0 {
		return vecpath.Point{}
	}
	if len(c.pts) == 1 {
		return c.pts[0]
	}
	seg, t := c.segmentAt(dist)
	return c.pts[seg].Lerp(c.pts[seg+1], t)
}

func (c *polylineCurve) TangentAt(dist float64) vecpath.Vec2 {
	if len(c.pts) < 2 {
		return vecpath.V2(1, 0)
	}
	seg, _ := c.segmentAt(dist)
	// A zero-length segment has no direction; search outward for one
	// that does.
	for i := seg; i < len(c.pts)-1; i++ {
		if d := c.pts[i].To(c.pts[i+1]); !d.IsZero() {
			return d.Normalize()
		}
	}
	for i := seg - 1; i >= 0; i-- {
		if d := c.pts[i].To(c.pts[i+1]); !d.IsZero() {
			return d.Normalize()
		}
	}
	return vecpath.V2(1, 0)
}

func (c *polylineCurve) NormalAt(dist float64) vecpath.Vec2 {
	return c.TangentAt(dist).Perp()
}
