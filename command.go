package vecpath

import "strconv"

// Command is a single draw instruction in a path.
// The concrete types are MoveTo, LineTo, CurveTo, and ClosePath.
// The interface is sealed so switches over commands stay exhaustive.
type Command interface {
	isCommand()
}

// MoveTo opens a new subpath at a position without drawing.
type MoveTo struct {
	Position Point
}

func (MoveTo) isCommand() {}

// LineTo draws a straight segment to a position.
type LineTo struct {
	Position Point
}

func (LineTo) isCommand() {}

// CurveTo draws a cubic Bezier segment. Control1 and Control2 are the
// off-curve handles; Position is the curve's endpoint.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Position Point
}

func (CurveTo) isCommand() {}

// ClosePath terminates the current subpath with an implied straight
// segment back to the subpath's most recent MoveTo position.
type ClosePath struct{}

func (ClosePath) isCommand() {}

// EndPoint returns the on-curve point a command leaves the pen at.
// ClosePath has no endpoint of its own and reports ok=false.
func EndPoint(c Command) (Point, bool) {
	switch cmd := c.(type) {
	case MoveTo:
		return cmd.Position, true
	case LineTo:
		return cmd.Position, true
	case CurveTo:
		return cmd.Position, true
	}
	return Point{}, false
}

// SubPath is an ordered sequence of commands beginning with one MoveTo.
// Multiple subpaths concatenate to form a compound path (e.g. a letter
// "O" is an outer loop plus an inner loop).
type SubPath []Command

// Start returns the position of the subpath's opening MoveTo.
func (sp SubPath) Start() (Point, bool) {
	if len(sp) == 0 {
		return Point{}, false
	}
	m, ok := sp[0].(MoveTo)
	if !ok {
		return Point{}, false
	}
	return m.Position, true
}

// End returns the last on-curve point of the subpath.
func (sp SubPath) End() (Point, bool) {
	for i := len(sp) - 1; i >= 0; i-- {
		if p, ok := EndPoint(sp[i]); ok {
			return p, true
		}
	}
	return Point{}, false
}

// coincidentTolerance is the distance under which a subpath's endpoint
// is treated as coinciding with its start for open/closed classification.
const coincidentTolerance = 0.01

// IsClosed returns true if the subpath ends with a ClosePath or its last
// on-curve point coincides with its start.
func (sp SubPath) IsClosed() bool {
	if len(sp) == 0 {
		return false
	}
	if _, ok := sp[len(sp)-1].(ClosePath); ok {
		return true
	}
	start, ok1 := sp.Start()
	end, ok2 := sp.End()
	return ok1 && ok2 && start.Approx(end, coincidentTolerance)
}

// Clone returns a deep copy of the subpath.
// Command variants are values, so a slice copy is a deep copy.
func (sp SubPath) Clone() SubPath {
	out := make(SubPath, len(sp))
	copy(out, sp)
	return out
}

// FillRule selects how self-overlapping regions of a path are filled.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// RGBA represents a flat paint color with red, green, blue, and alpha
// components, each in the range [0, 1]. Colors compare with == ; the
// same-fill merge policy requires exact equality.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	parse := func(s string) float64 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0
		}
		if len(s) == 1 {
			v *= 17 // expand nibble: "f" -> 0xff
		}
		return float64(v) / 255
	}
	switch len(hex) {
	case 3:
		return RGBA{parse(hex[0:1]), parse(hex[1:2]), parse(hex[2:3]), 1}
	case 4:
		return RGBA{parse(hex[0:1]), parse(hex[1:2]), parse(hex[2:3]), parse(hex[3:4])}
	case 6:
		return RGBA{parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6]), 1}
	case 8:
		return RGBA{parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6]), parse(hex[6:8])}
	}
	return RGBA{}
}

// PathData is the full description of one path element: geometry plus
// flat paint attributes. SubPaths is replaced wholesale after every edit;
// consumers recompute derived state (such as the editable point index)
// after every replacement.
type PathData struct {
	SubPaths      []SubPath
	FillColor     RGBA
	FillOpacity   float64
	StrokeColor   RGBA
	StrokeOpacity float64
	StrokeWidth   float64
	FillRule      FillRule
	Opacity       float64

	// Transform is an optional local-to-world transform. Boolean results
	// are expressed in world space and carry a nil Transform.
	Transform *Matrix
}

// Clone returns a deep copy of the path data.
func (pd *PathData) Clone() *PathData {
	out := *pd
	out.SubPaths = make([]SubPath, len(pd.SubPaths))
	for i, sp := range pd.SubPaths {
		out.SubPaths[i] = sp.Clone()
	}
	if pd.Transform != nil {
		m := *pd.Transform
		out.Transform = &m
	}
	return &out
}

// IsOpen returns true if any subpath is open. Boolean set operations are
// only defined on closed regions, so open paths are expanded into stroke
// outlines before combination.
func (pd *PathData) IsOpen() bool {
	for _, sp := range pd.SubPaths {
		if len(sp) > 0 && !sp.IsClosed() {
			return true
		}
	}
	return false
}

// WorldSpace returns a copy of the path data with its local transform
// applied to every command and cleared.
func (pd *PathData) WorldSpace() *PathData {
	out := pd.Clone()
	if pd.Transform == nil {
		return out
	}
	m := *pd.Transform
	for i, sp := range out.SubPaths {
		out.SubPaths[i] = transformSubPath(sp, m)
	}
	out.Transform = nil
	return out
}

func transformSubPath(sp SubPath, m Matrix) SubPath {
	out := make(SubPath, len(sp))
	for i, c := range sp {
		switch cmd := c.(type) {
		case MoveTo:
			out[i] = MoveTo{Position: m.TransformPoint(cmd.Position)}
		case LineTo:
			out[i] = LineTo{Position: m.TransformPoint(cmd.Position)}
		case CurveTo:
			out[i] = CurveTo{
				Control1: m.TransformPoint(cmd.Control1),
				Control2: m.TransformPoint(cmd.Control2),
				Position: m.TransformPoint(cmd.Position),
			}
		case ClosePath:
			out[i] = ClosePath{}
		}
	}
	return out
}

// BoundingBox returns a conservative axis-aligned bounding box: the hull
// of all anchor and control points, with the local transform applied.
// Control points of a cubic lie outside the curve, so the box can be
// larger than the tight box but never smaller. It is used only as a
// cheap pre-filter before the boolean operators.
func (pd *PathData) BoundingBox() (Rect, bool) {
	var bbox Rect
	var any bool
	add := func(p Point) {
		if pd.Transform != nil {
			p = pd.Transform.TransformPoint(p)
		}
		if !any {
			bbox = Rect{Min: p, Max: p}
			any = true
			return
		}
		bbox = bbox.Expand(p)
	}
	for _, sp := range pd.SubPaths {
		for _, c := range sp {
			switch cmd := c.(type) {
			case MoveTo:
				add(cmd.Position)
			case LineTo:
				add(cmd.Position)
			case CurveTo:
				add(cmd.Control1)
				add(cmd.Control2)
				add(cmd.Position)
			}
		}
	}
	return bbox, any
}

// circleKappa is the magic constant for approximating a circle with four
// cubic Bezier segments: 4/3 * (sqrt(2) - 1).
const circleKappa = 0.5522847498307936

// CircleSubPath builds a closed subpath approximating a circle with four
// cubic Bezier segments. Used as the "dot" fallback when a stroke is too
// short to outline.
func CircleSubPath(center Point, r float64) SubPath {
	cx, cy := center.X, center.Y
	offset := r * circleKappa
	return SubPath{
		MoveTo{Position: Pt(cx+r, cy)},
		CurveTo{Pt(cx+r, cy+offset), Pt(cx+offset, cy+r), Pt(cx, cy+r)},
		CurveTo{Pt(cx-offset, cy+r), Pt(cx-r, cy+offset), Pt(cx-r, cy)},
		CurveTo{Pt(cx-r, cy-offset), Pt(cx-offset, cy-r), Pt(cx, cy-r)},
		CurveTo{Pt(cx+offset, cy-r), Pt(cx+r, cy-offset), Pt(cx+r, cy)},
		ClosePath{},
	}
}
