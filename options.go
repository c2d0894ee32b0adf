package vecpath

import "math/rand/v2"

// ContourOption configures a ContourBuilder during creation.
//
// Example:
//
//	// Blob-brush style: short strokes still produce a dot.
//	b := vecpath.NewContourBuilder(kernel)
//
//	// Bridge/weld style: degenerate strokes yield nothing.
//	b := vecpath.NewContourBuilder(kernel, vecpath.WithDotFallback(false))
type ContourOption func(*contourOptions)

type contourOptions struct {
	dotFallback       bool
	minVertices       int
	smoothTolerance   float64
	simplifyTolerance float64
}

func defaultContourOptions() contourOptions {
	return contourOptions{
		dotFallback:       true,
		minVertices:       3,
		smoothTolerance:   0.5,
		simplifyTolerance: 1.0,
	}
}

// WithDotFallback controls the degenerate-stroke behavior: when true
// (the default), a stroke shorter than one unit becomes a circular dot;
// when false the builder returns nothing instead.
func WithDotFallback(enabled bool) ContourOption {
	return func(o *contourOptions) {
		o.dotFallback = enabled
	}
}

// WithMinVertices sets the minimum vertex count below which a built
// contour is discarded. Default 3.
func WithMinVertices(n int) ContourOption {
	return func(o *contourOptions) {
		if n > 0 {
			o.minVertices = n
		}
	}
}

// WithSmoothTolerance sets the simplification tolerance applied to the
// raw input stroke before sampling.
func WithSmoothTolerance(tol float64) ContourOption {
	return func(o *contourOptions) {
		if tol > 0 {
			o.smoothTolerance = tol
		}
	}
}

// WithSimplifyTolerance sets the tolerance of the light simplification
// pass run over the finished outline, removing the near-duplicate
// vertices introduced where the forward and backward passes meet.
func WithSimplifyTolerance(tol float64) ContourOption {
	return func(o *contourOptions) {
		if tol > 0 {
			o.simplifyTolerance = tol
		}
	}
}

// CombineOption configures a Combiner during creation.
type CombineOption func(*combineOptions)

type combineOptions struct {
	unionAreaEpsilon float64
	changeThreshold  float64
	flattenTolerance float64
}

func defaultCombineOptions() combineOptions {
	return combineOptions{
		unionAreaEpsilon: 0.05,
		changeThreshold:  0.15,
		flattenTolerance: 0.25,
	}
}

// WithUnionAreaEpsilon sets the minimum true intersection area required
// before a bridge/weld union absorbs a candidate. Bounding boxes can
// overlap with zero true intersection, so box overlap alone never
// qualifies.
func WithUnionAreaEpsilon(area float64) CombineOption {
	return func(o *combineOptions) {
		if area > 0 {
			o.unionAreaEpsilon = area
		}
	}
}

// WithChangeThreshold sets the minimum area difference for a subtract or
// intersect result to replace the original candidate.
func WithChangeThreshold(area float64) CombineOption {
	return func(o *combineOptions) {
		if area > 0 {
			o.changeThreshold = area
		}
	}
}

// WithFlattenTolerance sets the curve-flattening tolerance used when
// open paths are expanded into stroke outlines.
func WithFlattenTolerance(tol float64) CombineOption {
	return func(o *combineOptions) {
		if tol > 0 {
			o.flattenTolerance = tol
		}
	}
}

// FractureOption configures a Fracturer during creation.
type FractureOption func(*fractureOptions)

type fractureOptions struct {
	randFloat    func() float64
	minPieceArea float64
}

func defaultFractureOptions() fractureOptions {
	return fractureOptions{
		randFloat:    rand.Float64,
		minPieceArea: 0.1,
	}
}

// WithFractureRand injects the randomness source used by the scatter
// seed pattern. Tests inject a seeded source for determinism.
func WithFractureRand(r *rand.Rand) FractureOption {
	return func(o *fractureOptions) {
		if r != nil {
			o.randFloat = r.Float64
		}
	}
}

// WithMinPieceArea sets the area below which a Voronoi cell is
// considered trivial and discarded.
func WithMinPieceArea(area float64) FractureOption {
	return func(o *fractureOptions) {
		if area > 0 {
			o.minPieceArea = area
		}
	}
}
