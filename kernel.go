package vecpath

// The geometry kernel is an external collaborator: it performs Bezier
// flattening, arc-length sampling, polyline simplification, and the
// closed-region boolean operators. The core consumes it through this
// narrow interface and never reimplements it. All kernel values have
// value semantics: no handles to dispose, no retained scene graph;
// lifetime management is left to the garbage collector.

// Curve is an arc-length parameterized open curve. Parameters are
// distances along the curve in [0, Length()]; out-of-range values clamp.
type Curve interface {
	// Length returns the total arc length.
	Length() float64

	// PointAt returns the point at the given arc-length distance.
	PointAt(dist float64) Point

	// TangentAt returns the unit tangent at the given distance.
	TangentAt(dist float64) Vec2

	// NormalAt returns the unit normal (tangent rotated 90 degrees
	// counter-clockwise) at the given distance.
	NormalAt(dist float64) Vec2
}

// Region is an immutable closed 2D region: one or more disjoint or
// nested closed loops.
type Region interface {
	// Area returns the total enclosed area (holes subtracted).
	Area() float64

	// BoundingBox returns the region's axis-aligned bounding box.
	BoundingBox() Rect

	// IsEmpty returns true if the region encloses nothing.
	IsEmpty() bool

	// SubPaths converts the region back into the command model: one
	// closed subpath per loop, holes included.
	SubPaths() []SubPath

	// Pieces splits the region into its disjoint connected parts. Each
	// piece keeps its own holes. A boolean operator can legitimately
	// split a single region into several pieces.
	Pieces() []Region
}

// Kernel is the geometry collaborator interface.
//
// Boolean operators report failures as errors; the combination policy
// catches them per candidate and skips that candidate rather than
// failing the whole pass.
type Kernel interface {
	// Smooth simplifies a raw polyline within the given tolerance.
	Smooth(points []Point, tolerance float64) []Point

	// Curve builds an arc-length parameterized curve over a polyline.
	Curve(points []Point) Curve

	// FlattenPath converts subpaths to polylines within the given
	// tolerance. The result holds exactly one polyline per input
	// subpath, in order; a degenerate subpath yields an empty polyline
	// rather than being dropped.
	FlattenPath(subPaths []SubPath, tolerance float64) [][]Point

	// Region builds a closed region from subpaths. Open subpaths are
	// closed implicitly; degenerate input yields an error.
	Region(subPaths []SubPath) (Region, error)

	// Union returns the set union of two regions.
	Union(a, b Region) (Region, error)

	// Intersect returns the set intersection of two regions.
	Intersect(a, b Region) (Region, error)

	// Subtract returns a with b removed.
	Subtract(a, b Region) (Region, error)
}
