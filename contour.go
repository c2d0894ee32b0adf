package vecpath

import "math"

// ContourBuilder converts an arbitrary open stroke plus a radius into a
// closed filled outline approximating the stroke drawn with width
// 2*radius and round caps. Every "thicken a freehand stroke into a
// fillable shape" tool runs through this builder; bridge/weld tools use
// it with a smaller radius and the dot fallback disabled.
type ContourBuilder struct {
	kernel Kernel
	opts   contourOptions
}

// NewContourBuilder creates a contour builder over the given kernel.
func NewContourBuilder(k Kernel, opts ...ContourOption) *ContourBuilder {
	o := defaultContourOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ContourBuilder{kernel: k, opts: o}
}

// Build outlines a raw stroke. It returns nil when there is nothing to
// build: no input points, a non-positive radius, or (with the dot
// fallback disabled) a degenerate stroke or an outline with fewer than
// the minimum number of vertices.
func (b *ContourBuilder) Build(points []Point, radius float64) []SubPath {
	if len(points) == 0 || radius <= 0 {
		return nil
	}
	smoothed := b.kernel.Smooth(points, b.opts.smoothTolerance)
	if len(smoothed) == 0 {
		return nil
	}
	curve := b.kernel.Curve(smoothed)
	length := curve.Length()

	if length < 1 {
		// Too short to outline: a single dab of the brush.
		if !b.opts.dotFallback {
			return nil
		}
		return []SubPath{CircleSubPath(smoothed[0], radius)}
	}

	// Denser sampling for larger radii relative to length, with a floor
	// so short strokes still get a smooth contour.
	n := int(math.Ceil(length / math.Max(1, radius/3)))
	if n < 12 {
		n = 12
	}

	outline := make([]Point, 0, 2*(n+1)+10)

	// Forward pass along the +normal side.
	for i := 0; i <= n; i++ {
		s := float64(i) * length / float64(n)
		outline = append(outline, curve.PointAt(s).Offset(curve.NormalAt(s).Mul(radius)))
	}

	// Round end cap: a 5-point semicircular arc swinging from +normal
	// to -normal around the final point.
	endPt := curve.PointAt(length)
	endTan := curve.TangentAt(length)
	endNorm := curve.NormalAt(length)
	for deg := 30; deg <= 150; deg += 30 {
		a := float64(deg) * math.Pi / 180
		dir := endNorm.Mul(math.Cos(a)).Add(endTan.Mul(math.Sin(a)))
		outline = append(outline, endPt.Offset(dir.Mul(radius)))
	}

	// Backward pass along the -normal side.
	for i := n; i >= 0; i-- {
		s := float64(i) * length / float64(n)
		outline = append(outline, curve.PointAt(s).Offset(curve.NormalAt(s).Mul(-radius)))
	}

	// Mirrored start cap, swinging from -normal back to +normal.
	startPt := curve.PointAt(0)
	startTan := curve.TangentAt(0)
	startNorm := curve.NormalAt(0)
	for deg := 30; deg <= 150; deg += 30 {
		a := float64(deg) * math.Pi / 180
		dir := startNorm.Mul(-math.Cos(a)).Add(startTan.Mul(-math.Sin(a)))
		outline = append(outline, startPt.Offset(dir.Mul(radius)))
	}

	// The two passes meet at the caps and leave near-duplicate vertices;
	// a light simplification pass removes them.
	outline = b.kernel.Smooth(outline, b.opts.simplifyTolerance)
	if len(outline) < b.opts.minVertices {
		return nil
	}

	sp := make(SubPath, 0, len(outline)+1)
	sp = append(sp, MoveTo{Position: outline[0]})
	for _, p := range outline[1:] {
		sp = append(sp, LineTo{Position: p})
	}
	sp = append(sp, ClosePath{})
	return []SubPath{sp}
}
