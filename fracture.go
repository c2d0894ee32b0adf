package vecpath

import (
	"errors"
	"math"
)

var errCoincidentSeeds = errors.New("coincident seeds clip nothing")

// SeedPattern selects how fracture seed points are distributed over the
// target shape's bounding box.
type SeedPattern int

const (
	// SeedGrid lays seeds out on a regular grid.
	SeedGrid SeedPattern = iota

	// SeedRadial places one seed at the center and the rest evenly on
	// a surrounding circle.
	SeedRadial

	// SeedScatter places seeds uniformly at random.
	SeedScatter
)

// Fracturer partitions a shape into Voronoi cells: each seed's cell is
// the shape clipped by one half-plane per competing seed, derived from
// the perpendicular bisector of the seed pair.
type Fracturer struct {
	kernel Kernel
	opts   fractureOptions
}

// NewFracturer creates a fracturer over the given kernel.
func NewFracturer(k Kernel, opts ...FractureOption) *Fracturer {
	o := defaultFractureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Fracturer{kernel: k, opts: o}
}

// Seeds generates n seed points within bounds according to the pattern.
func (f *Fracturer) Seeds(bounds Rect, pattern SeedPattern, n int) []Point {
	if n <= 0 || bounds.IsEmpty() {
		return nil
	}
	seeds := make([]Point, 0, n)
	switch pattern {
	case SeedRadial:
		center := bounds.Center()
		seeds = append(seeds, center)
		r := math.Min(bounds.Width(), bounds.Height()) / 3
		for i := 0; len(seeds) < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n-1)
			seeds = append(seeds, center.Offset(V2(math.Cos(a), math.Sin(a)).Mul(r)))
		}
	case SeedScatter:
		for len(seeds) < n {
			seeds = append(seeds, Pt(
				bounds.Min.X+f.opts.randFloat()*bounds.Width(),
				bounds.Min.Y+f.opts.randFloat()*bounds.Height(),
			))
		}
	default: // SeedGrid
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		rows := (n + cols - 1) / cols
		for row := 0; row < rows && len(seeds) < n; row++ {
			for col := 0; col < cols && len(seeds) < n; col++ {
				seeds = append(seeds, Pt(
					bounds.Min.X+(float64(col)+0.5)*bounds.Width()/float64(cols),
					bounds.Min.Y+(float64(row)+0.5)*bounds.Height()/float64(rows),
				))
			}
		}
	}
	return seeds
}

// Fracture partitions the element into Voronoi pieces. Cells with
// trivial resulting area are discarded; the operation succeeds only if
// at least 2 valid pieces survive, otherwise it returns nil and leaves
// the input untouched.
func (f *Fracturer) Fracture(el *Element, pattern SeedPattern, n int) []*PathData {
	if el == nil || el.Data == nil || n < 2 {
		return nil
	}
	source, err := f.kernel.Region(el.Data.WorldSpace().SubPaths)
	if err != nil || source.IsEmpty() {
		Logger().Warn("fracture: target is not a region", "err", err)
		return nil
	}
	bounds := source.BoundingBox()
	seeds := f.Seeds(bounds, pattern, n)
	ext := bounds.Diagonal()*2 + 10

	var pieces []*PathData
	for i, seed := range seeds {
		cell, ok := f.cellOf(source, seeds, i, seed, ext)
		if !ok || cell.Area() <= f.opts.minPieceArea {
			continue
		}
		pd := el.Data.Clone()
		pd.SubPaths = cell.SubPaths()
		pd.Transform = nil
		pieces = append(pieces, pd)
	}

	if len(pieces) < 2 {
		return nil
	}
	return pieces
}

// cellOf clips the source region by the half-plane nearer to seed for
// every competing seed. A kernel failure abandons the cell.
func (f *Fracturer) cellOf(source Region, seeds []Point, i int, seed Point, ext float64) (Region, bool) {
	cell := source
	for j, other := range seeds {
		if j == i {
			continue
		}
		hp, err := f.halfPlane(seed, other, ext)
		if err != nil {
			continue // coincident seeds clip nothing
		}
		clipped, err := f.kernel.Intersect(cell, hp)
		if err != nil {
			Logger().Debug("fracture: clip failed", "seed", i, "err", err)
			return nil, false
		}
		cell = clipped
		if cell.IsEmpty() {
			return nil, false
		}
	}
	return cell, true
}

// halfPlane builds a large quad covering the side of the perpendicular
// bisector of a-b that is nearer to a. ext must exceed the source's
// extent so the quad behaves as an unbounded half-plane.
func (f *Fracturer) halfPlane(a, b Point, ext float64) (Region, error) {
	dir := a.To(b).Normalize()
	if dir.IsZero() {
		return nil, errCoincidentSeeds
	}
	mid := a.Lerp(b, 0.5)
	perp := dir.Perp()
	p1 := mid.Offset(perp.Mul(ext))
	p2 := mid.Offset(perp.Mul(-ext))
	p3 := p2.Offset(dir.Mul(-ext))
	p4 := p1.Offset(dir.Mul(-ext))
	return f.kernel.Region([]SubPath{{
		MoveTo{Position: p1},
		LineTo{Position: p2},
		LineTo{Position: p3},
		LineTo{Position: p4},
		ClosePath{},
	}})
}
