package vecpath

import "math"

// Control point alignment keeps the two Bezier handles that share an
// anchor consistent while one of them is dragged. The alignment mode is a
// transient, per-anchor choice set explicitly by the user; it is never
// stored in the path data. When no choice has been made, the mode
// defaults to whatever the initial geometry implies (DetectAlignment).

// Alignment describes the symmetry relation between two handles that
// share an anchor.
type Alignment int

const (
	// AlignmentIndependent: the paired handle is left untouched.
	AlignmentIndependent Alignment = iota

	// AlignmentAligned: the paired handle points in the exact opposite
	// direction but keeps its own length.
	AlignmentAligned

	// AlignmentMirrored: the paired handle points in the exact opposite
	// direction with the same length as the moved handle.
	AlignmentMirrored
)

func (a Alignment) String() string {
	switch a {
	case AlignmentAligned:
		return "aligned"
	case AlignmentMirrored:
		return "mirrored"
	}
	return "independent"
}

// AnchorTolerance is the distance under which two control points are
// considered to share the same anchor.
const AnchorTolerance = 0.1

// Collinearity and length tolerances for classifying initial geometry.
const (
	alignAngleEpsilon  = 1e-3
	alignLengthEpsilon = 0.01
)

// DetectAlignment classifies the initial geometry of a handle pair:
// collinear handles of equal length are mirrored, collinear handles of
// unequal length are aligned, anything else is independent.
func DetectAlignment(anchor, a, b Point) Alignment {
	va := anchor.To(a)
	vb := anchor.To(b)
	la := va.Length()
	lb := vb.Length()
	if la == 0 || lb == 0 {
		return AlignmentIndependent
	}
	ua := va.Mul(1 / la)
	ub := vb.Mul(1 / lb)

	// Opposite directions: unit cross near zero, dot near -1.
	if math.Abs(ua.Cross(ub)) > alignAngleEpsilon || ua.Dot(ub) >= 0 {
		return AlignmentIndependent
	}
	if math.Abs(la-lb) <= alignLengthEpsilon {
		return AlignmentMirrored
	}
	return AlignmentAligned
}

// SolveAlignment recomputes the paired handle's position after its
// partner has been dragged to moved. The paired handle is pointed in the
// exact opposite direction from the anchor; AlignmentAligned preserves
// the paired handle's own length, AlignmentMirrored forces it to the
// moved handle's length. AlignmentIndependent returns paired unchanged,
// as does a degenerate drag onto the anchor itself.
func SolveAlignment(mode Alignment, anchor, moved, paired Point) Point {
	if mode == AlignmentIndependent {
		return paired
	}
	dir := anchor.To(moved).Normalize()
	if dir.IsZero() {
		return paired
	}
	length := anchor.To(moved).Length()
	if mode == AlignmentAligned {
		length = anchor.To(paired).Length()
	}
	return anchor.Offset(dir.Neg().Mul(length))
}

// HandlePartner locates the control point paired with ref across the
// on-curve junction both handles attach to: Control2 of one curve pairs
// with Control1 of the next curve in the same subpath. For closed
// subpaths the pairing wraps around when the loop's start and end
// coincide within AnchorTolerance. The returned anchor is the shared
// on-curve junction point.
//
// Returns ok=false when ref is not a curve handle or has no partner.
func HandlePartner(commands []Command, ref PointRef) (partner PointRef, anchor Point, ok bool) {
	if ref.CommandIndex < 0 || ref.CommandIndex >= len(commands) {
		return PointRef{}, Point{}, false
	}
	cmd, isCurve := commands[ref.CommandIndex].(CurveTo)
	if !isCurve {
		return PointRef{}, Point{}, false
	}
	first, last := subPathRange(commands, ref.CommandIndex)

	switch ref.PointIndex {
	case 1:
		// Control2 attaches to this curve's endpoint. The partner is
		// Control1 of the next curve, or of the subpath's first curve
		// when the loop wraps around to the endpoint.
		anchor = cmd.Position
		next := ref.CommandIndex + 1
		if next <= last {
			if _, isNextCurve := commands[next].(CurveTo); isNextCurve {
				return PointRef{CommandIndex: next, PointIndex: 0}, anchor, true
			}
			if _, isClose := commands[next].(ClosePath); !isClose {
				return PointRef{}, Point{}, false
			}
			// Only a ClosePath follows: fall through to the wrap case.
		}
		if start, okStart := startOf(commands, first); okStart && start.Approx(anchor, AnchorTolerance) {
			if _, isCurveHead := commands[first+1].(CurveTo); first+1 <= last && isCurveHead {
				return PointRef{CommandIndex: first + 1, PointIndex: 0}, anchor, true
			}
		}
	case 0:
		// Control1 attaches to the previous command's endpoint. The
		// partner is Control2 of the previous curve, or of the
		// subpath's last curve when the loop wraps around to the start.
		prev := ref.CommandIndex - 1
		if prev >= first {
			if p, okPrev := EndPoint(commands[prev]); okPrev {
				anchor = p
			}
			if _, isPrevCurve := commands[prev].(CurveTo); isPrevCurve {
				return PointRef{CommandIndex: prev, PointIndex: 1}, anchor, true
			}
			if _, isMove := commands[prev].(MoveTo); isMove {
				tailIdx := last
				if _, isClose := commands[tailIdx].(ClosePath); isClose {
					tailIdx--
				}
				if tail, okTail := EndPoint(commands[tailIdx]); okTail && tail.Approx(anchor, AnchorTolerance) {
					if _, isTailCurve := commands[tailIdx].(CurveTo); isTailCurve {
						return PointRef{CommandIndex: tailIdx, PointIndex: 1}, anchor, true
					}
				}
			}
		}
	}
	return PointRef{}, Point{}, false
}

// subPathRange returns the index range [first, last] of the subpath
// containing index within a flattened command stream. first addresses
// the opening MoveTo when one exists; last ignores a trailing ClosePath
// only insofar as it is still part of the range.
func subPathRange(commands []Command, index int) (first, last int) {
	first = index
	for first > 0 {
		if _, ok := commands[first].(MoveTo); ok {
			break
		}
		first--
	}
	last = index
	for last+1 < len(commands) {
		if _, ok := commands[last+1].(MoveTo); ok {
			break
		}
		last++
	}
	return first, last
}

func startOf(commands []Command, first int) (Point, bool) {
	if m, ok := commands[first].(MoveTo); ok {
		return m.Position, true
	}
	return Point{}, false
}
