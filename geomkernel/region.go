package geomkernel

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/inkforge/vecpath"
)

// region is an immutable closed region backed by a simplefeatures
// MultiPolygon. The zero value is the empty region.
type region struct {
	mp geom.MultiPolygon
}

func (r *region) Area() float64 {
	return r.mp.Area()
}

func (r *region) IsEmpty() bool {
	return r.mp.NumPolygons() == 0
}

func (r *region) BoundingBox() vecpath.Rect {
	var bbox vecpath.Rect
	var any bool
	r.forEachRing(func(ls geom.LineString) {
		seq := ls.Coordinates()
		for i := 0; i < seq.Length(); i++ {
			xy := seq.GetXY(i)
			p := vecpath.Pt(xy.X, xy.Y)
			if !any {
				bbox = vecpath.Rect{Min: p, Max: p}
				any = true
				continue
			}
			bbox = bbox.Expand(p)
		}
	})
	return bbox
}

// SubPaths converts the region back into the command model: one closed
// subpath per ring, exterior rings and holes alike.
func (r *region) SubPaths() []vecpath.SubPath {
	var out []vecpath.SubPath
	r.forEachRing(func(ls geom.LineString) {
		if sp, ok := ringSubPath(ls); ok {
			out = append(out, sp)
		}
	})
	return out
}

// Pieces splits the region into its disjoint polygons, each keeping its
// own holes.
func (r *region) Pieces() []vecpath.Region {
	out := make([]vecpath.Region, 0, r.mp.NumPolygons())
	for i := 0; i < r.mp.NumPolygons(); i++ {
		out = append(out, &region{mp: geom.NewMultiPolygon([]geom.Polygon{r.mp.PolygonN(i)})})
	}
	return out
}

func (r *region) forEachRing(fn func(geom.LineString)) {
	for i := 0; i < r.mp.NumPolygons(); i++ {
		poly := r.mp.PolygonN(i)
		fn(poly.ExteriorRing())
		for j := 0; j < poly.NumInteriorRings(); j++ {
			fn(poly.InteriorRingN(j))
		}
	}
}

// ringSubPath converts a closed ring to a subpath. Rings repeat their
// first coordinate at the end; the duplicate is dropped in favor of an
// explicit ClosePath.
func ringSubPath(ls geom.LineString) (vecpath.SubPath, bool) {
	seq := ls.Coordinates()
	n := seq.Length()
	if n > 1 && seq.GetXY(n-1) == seq.GetXY(0) {
		n--
	}
	if n < 3 {
		return nil, false
	}
	sp := make(vecpath.SubPath, 0, n+1)
	first := seq.GetXY(0)
	sp = append(sp, vecpath.MoveTo{Position: vecpath.Pt(first.X, first.Y)})
	for i := 1; i < n; i++ {
		xy := seq.GetXY(i)
		sp = append(sp, vecpath.LineTo{Position: vecpath.Pt(xy.X, xy.Y)})
	}
	sp = append(sp, vecpath.ClosePath{})
	return sp, true
}
