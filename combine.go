package vecpath

import "math"

// Combiner decides which existing shapes a freshly built contour should
// be merged with, runs the boolean operators through the kernel, and
// resolves the results back into the command model. All results are
// expressed in world space with no inherited transform.
type Combiner struct {
	kernel   Kernel
	contours *ContourBuilder
	opts     combineOptions
}

// NewCombiner creates a combiner over the given kernel.
func NewCombiner(k Kernel, opts ...CombineOption) *Combiner {
	o := defaultCombineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Combiner{
		kernel: k,
		// Open-path expansion: degenerate outlines fail instead of
		// falling back to a dot.
		contours: NewContourBuilder(k, WithDotFallback(false)),
		opts:     o,
	}
}

// MergeResult is the outcome of a merge pass: the new element to insert
// and the ids of candidates it absorbed.
type MergeResult struct {
	Element    *PathData
	RemovedIDs []string
}

// MergeSameFill merges a new shape with every candidate that shares its
// exact fill color, has no stroke, and overlaps it. Candidates are
// processed in input order and the accumulating union is the authority
// for subsequent overlap tests, so earlier merges can grow the working
// bounding box enough to pull in candidates that did not overlap the
// original contour. This order dependence is deliberate and stable.
//
// A kernel failure on any single candidate skips that candidate; it is
// never fatal to the whole pass. Returns nil only when the shape itself
// cannot form a region.
func (c *Combiner) MergeSameFill(shape *PathData, candidates []*Element) *MergeResult {
	working, err := c.kernel.Region(shape.WorldSpace().SubPaths)
	if err != nil || working.IsEmpty() {
		Logger().Warn("same-fill merge: shape is not a region", "err", err)
		return nil
	}
	bbox := working.BoundingBox()

	var removed []string
	for _, cand := range candidates {
		if cand == nil || cand.Data == nil {
			continue
		}
		if cand.Data.FillColor != shape.FillColor || hasStroke(cand.Data) {
			continue
		}
		candBox, ok := cand.Data.BoundingBox()
		if !ok || !bbox.Intersects(candBox) {
			continue
		}
		candRegion, err := c.regionOf(cand.Data)
		if err != nil {
			Logger().Debug("same-fill merge: skipping candidate", "id", cand.ID, "err", err)
			continue
		}
		merged, err := c.kernel.Union(working, candRegion)
		if err != nil {
			Logger().Debug("same-fill merge: union failed", "id", cand.ID, "err", err)
			continue
		}
		working = merged
		bbox = working.BoundingBox()
		removed = append(removed, cand.ID)
	}

	out := shape.Clone()
	out.SubPaths = working.SubPaths()
	out.Transform = nil
	return &MergeResult{Element: out, RemovedIDs: removed}
}

// UnionOverlapping is the bridge/weld policy: the shape only absorbs a
// candidate whose true geometric intersection with the accumulating
// union has area above the configured epsilon, because bounding boxes
// can overlap with zero real intersection. A successful merge requires
// absorbing at least two candidates; one is never enough to justify
// creating a bridge, so fewer than two yields nil and leaves all inputs
// untouched.
func (c *Combiner) UnionOverlapping(shape *PathData, candidates []*Element) *MergeResult {
	working, err := c.kernel.Region(shape.WorldSpace().SubPaths)
	if err != nil || working.IsEmpty() {
		return nil
	}
	bbox := working.BoundingBox()

	var removed []string
	for _, cand := range candidates {
		if cand == nil || cand.Data == nil {
			continue
		}
		candBox, ok := cand.Data.BoundingBox()
		if !ok || !bbox.Intersects(candBox) {
			continue
		}
		candRegion, err := c.regionOf(cand.Data)
		if err != nil {
			Logger().Debug("union: skipping candidate", "id", cand.ID, "err", err)
			continue
		}
		inter, err := c.kernel.Intersect(working, candRegion)
		if err != nil {
			Logger().Debug("union: intersect failed", "id", cand.ID, "err", err)
			continue
		}
		if inter.Area() <= c.opts.unionAreaEpsilon {
			continue
		}
		merged, err := c.kernel.Union(working, candRegion)
		if err != nil {
			Logger().Debug("union: union failed", "id", cand.ID, "err", err)
			continue
		}
		working = merged
		bbox = working.BoundingBox()
		removed = append(removed, cand.ID)
	}

	if len(removed) < 2 {
		return nil
	}
	out := shape.Clone()
	out.SubPaths = working.SubPaths()
	out.Transform = nil
	return &MergeResult{Element: out, RemovedIDs: removed}
}

// CarveOp selects the operator applied by Carve.
type CarveOp int

const (
	// CarveSubtract removes the cutter region from each candidate
	// (eraser tools).
	CarveSubtract CarveOp = iota

	// CarveIntersect keeps only the part of each candidate inside the
	// cutter region (shape-cutter tools).
	CarveIntersect
)

// CarveResult maps each affected candidate id to its replacement
// pieces. An empty slice means the candidate vanished entirely. A single
// region can legitimately split into several disjoint pieces.
type CarveResult struct {
	Replacements map[string][]*PathData
}

// Carve applies the chosen operator against every candidate overlapping
// the cutter region. A candidate is only replaced when the operation
// changed its area meaningfully (beyond the configured threshold).
// Returns nil when no candidate changed.
func (c *Combiner) Carve(op CarveOp, cutter []SubPath, candidates []*Element) *CarveResult {
	cutterRegion, err := c.kernel.Region(cutter)
	if err != nil || cutterRegion.IsEmpty() {
		Logger().Warn("carve: cutter is not a region", "err", err)
		return nil
	}
	cutterBox := cutterRegion.BoundingBox()

	replacements := make(map[string][]*PathData)
	for _, cand := range candidates {
		if cand == nil || cand.Data == nil {
			continue
		}
		candBox, ok := cand.Data.BoundingBox()
		if !ok || !cutterBox.Intersects(candBox) {
			continue
		}
		candRegion, err := c.regionOf(cand.Data)
		if err != nil {
			Logger().Debug("carve: skipping candidate", "id", cand.ID, "err", err)
			continue
		}

		var result Region
		switch op {
		case CarveIntersect:
			result, err = c.kernel.Intersect(candRegion, cutterRegion)
		default:
			result, err = c.kernel.Subtract(candRegion, cutterRegion)
		}
		if err != nil {
			Logger().Debug("carve: operator failed", "id", cand.ID, "err", err)
			continue
		}
		if math.Abs(result.Area()-candRegion.Area()) <= c.opts.changeThreshold {
			continue
		}

		pieces := result.Pieces()
		out := make([]*PathData, 0, len(pieces))
		for _, piece := range pieces {
			pd := cand.Data.Clone()
			pd.SubPaths = piece.SubPaths()
			pd.Transform = nil
			out = append(out, pd)
		}
		replacements[cand.ID] = out
	}

	if len(replacements) == 0 {
		return nil
	}
	return &CarveResult{Replacements: replacements}
}

// regionOf builds a candidate's closed region in world space. An open
// path is first expanded into a closed outline with the stroke contour
// builder keyed to the path's own stroke width, since boolean set
// operations are only defined on closed regions.
func (c *Combiner) regionOf(pd *PathData) (Region, error) {
	world := pd.WorldSpace()
	if !world.IsOpen() {
		return c.kernel.Region(world.SubPaths)
	}

	radius := world.StrokeWidth / 2
	if radius < 0.5 {
		radius = 0.5
	}
	polylines := c.kernel.FlattenPath(world.SubPaths, c.opts.flattenTolerance)

	var subPaths []SubPath
	for i, sp := range world.SubPaths {
		if len(sp) == 0 {
			continue
		}
		if sp.IsClosed() {
			subPaths = append(subPaths, sp)
			continue
		}
		if i < len(polylines) {
			subPaths = append(subPaths, c.contours.Build(polylines[i], radius)...)
		}
	}
	return c.kernel.Region(subPaths)
}

func hasStroke(pd *PathData) bool {
	return pd.StrokeWidth > 0 && pd.StrokeOpacity > 0
}
