// Package geomkernel is the production geometry kernel for vecpath. It
// implements the vecpath.Kernel interface on top of simplefeatures
// polygon booleans, adaptive Bezier flattening, arc-length sampled
// polyline curves and Ramer-Douglas-Peucker simplification.
package geomkernel

import (
	"errors"
	"fmt"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/inkforge/vecpath"
)

var (
	errDegenerateRegion = errors.New("geomkernel: subpaths enclose no area")
	errForeignRegion    = errors.New("geomkernel: region was not produced by this kernel")
)

// Kernel implements vecpath.Kernel. The zero value is not usable; call
// New.
type Kernel struct {
	flattenTol float64
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithFlattenTolerance sets the maximum chord deviation used when
// flattening curves into polylines.
func WithFlattenTolerance(tol float64) Option {
	return func(k *Kernel) {
		if tol > 0 {
			k.flattenTol = tol
		}
	}
}

func New(opts ...Option) *Kernel {
	k := &Kernel{flattenTol: 0.25}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kernel) Smooth(points []vecpath.Point, tolerance float64) []vecpath.Point {
	return simplifyPolyline(points, tolerance)
}

func (k *Kernel) Curve(points []vecpath.Point) vecpath.Curve {
	return newPolylineCurve(points)
}

// FlattenPath returns exactly one polyline per input subpath, empty for
// subpaths that flatten to nothing, so callers can correlate results
// with their inputs by index.
func (k *Kernel) FlattenPath(subPaths []vecpath.SubPath, tolerance float64) [][]vecpath.Point {
	out := make([][]vecpath.Point, len(subPaths))
	for i, sp := range subPaths {
		out[i] = flattenSubPath(sp, tolerance)
	}
	return out
}

// Region builds a closed region from subpaths. Each subpath is
// flattened to a ring; rings combine under even-odd semantics, so a
// ring inside another punches a hole. Subpaths too degenerate to
// enclose area are skipped; an error is returned only when nothing
// encloses area or a ring is invalid.
func (k *Kernel) Region(subPaths []vecpath.SubPath) (vecpath.Region, error) {
	var acc geom.Geometry
	var have bool
	for _, sp := range subPaths {
		poly, ok, err := k.ringPolygon(sp)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !have {
			acc = poly.AsGeometry()
			have = true
			continue
		}
		merged, err := geom.SymmetricDifference(acc, poly.AsGeometry())
		if err != nil {
			return nil, fmt.Errorf("geomkernel: compose subpaths: %w", err)
		}
		acc = merged
	}
	if !have {
		return nil, errDegenerateRegion
	}
	mp := polygonalParts(acc)
	if mp.NumPolygons() == 0 {
		return nil, errDegenerateRegion
	}
	return &region{mp: mp}, nil
}

func (k *Kernel) Union(a, b vecpath.Region) (vecpath.Region, error) {
	return k.boolean(a, b, geom.Union)
}

func (k *Kernel) Intersect(a, b vecpath.Region) (vecpath.Region, error) {
	return k.boolean(a, b, geom.Intersection)
}

func (k *Kernel) Subtract(a, b vecpath.Region) (vecpath.Region, error) {
	return k.boolean(a, b, geom.Difference)
}

func (k *Kernel) boolean(a, b vecpath.Region, op func(geom.Geometry, geom.Geometry) (geom.Geometry, error)) (vecpath.Region, error) {
	ra, err := unwrap(a)
	if err != nil {
		return nil, err
	}
	rb, err := unwrap(b)
	if err != nil {
		return nil, err
	}
	g, err := op(ra.mp.AsGeometry(), rb.mp.AsGeometry())
	if err != nil {
		return nil, fmt.Errorf("geomkernel: boolean: %w", err)
	}
	return &region{mp: polygonalParts(g)}, nil
}

// ringPolygon flattens one subpath into a single-ring polygon. Returns
// ok=false for subpaths that cannot enclose area.
func (k *Kernel) ringPolygon(sp vecpath.SubPath) (geom.Polygon, bool, error) {
	pts := dedupe(flattenSubPath(sp, k.flattenTol))
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return geom.Polygon{}, false, nil
	}
	coords := make([]float64, 0, (len(pts)+1)*2)
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	coords = append(coords, pts[0].X, pts[0].Y)
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	poly := geom.NewPolygon([]geom.LineString{ring})
	if err := poly.Validate(); err != nil {
		return geom.Polygon{}, false, fmt.Errorf("geomkernel: invalid contour: %w", err)
	}
	return poly, true, nil
}

// polygonalParts keeps the polygonal content of a boolean result and
// drops any lower-dimensional residue.
func polygonalParts(g geom.Geometry) geom.MultiPolygon {
	var polys []geom.Polygon
	collectPolygons(g, &polys)
	return geom.NewMultiPolygon(polys)
}

func collectPolygons(g geom.Geometry, out *[]geom.Polygon) {
	switch g.Type() {
	case geom.TypePolygon:
		if p := g.MustAsPolygon(); !p.IsEmpty() {
			*out = append(*out, p)
		}
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		for i := 0; i < mp.NumPolygons(); i++ {
			if p := mp.PolygonN(i); !p.IsEmpty() {
				*out = append(*out, p)
			}
		}
	case geom.TypeGeometryCollection:
		gc := g.MustAsGeometryCollection()
		for i := 0; i < gc.NumGeometries(); i++ {
			collectPolygons(gc.GeometryN(i), out)
		}
	}
}

func dedupe(pts []vecpath.Point) []vecpath.Point {
	out := pts[:0:0]
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

func unwrap(r vecpath.Region) (*region, error) {
	rr, ok := r.(*region)
	if !ok {
		return nil, errForeignRegion
	}
	return rr, nil
}
