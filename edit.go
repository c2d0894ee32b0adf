package vecpath

// Point editing operations. All operations read a full snapshot of the
// subpaths, compute a new subpath slice, and hand it back for wholesale
// replacement; nothing mutates the input. Invalid or stale references
// make an operation a no-op, never an error: callers validate selection
// against current geometry immediately before calling, and duplicate
// events from overlapping input handlers are expected.

// cutOffset is how far the second fragment's new MoveTo is displaced
// from the cut point, so the two fragments are visibly distinct.
var cutOffset = V2(3, 3)

// MovePoints applies the same delta to every referenced point. A curve
// endpoint moves together with its handles only if those handles are
// also referenced; moving the endpoint alone does not drag its handles.
func MovePoints(subPaths []SubPath, refs []PointRef, delta Vec2) []SubPath {
	commands := Flatten(subPaths)
	updates := make([]PointUpdate, 0, len(refs))
	for _, ref := range refs {
		p, ok := PointAt(commands, ref)
		if !ok {
			continue
		}
		updates = append(updates, PointUpdate{
			CommandIndex: ref.CommandIndex,
			PointIndex:   ref.PointIndex,
			Position:     p.Offset(delta),
		})
	}
	if len(updates) == 0 {
		return subPaths
	}
	return Regroup(ApplyUpdates(commands, updates))
}

// DeleteResult describes the outcome of a point deletion.
type DeleteResult struct {
	// SubPaths is the new geometry. Empty when the element itself
	// should be removed.
	SubPaths []SubPath

	// RemoveElement is true when no drawable subpath survived and the
	// owning element should be deleted rather than left invalid.
	RemoveElement bool

	// Next is the suggested selection after the deletion: the next
	// remaining non-control point in document order, falling back to
	// the previous one, then to none. This lets repeated delete-key
	// presses walk a path without re-selection.
	Next *PointRef
}

// DeletePoints removes the referenced points, grouped by command:
//
//   - MoveTo deleted: the command is removed and the subpath's next
//     command is promoted to MoveTo using its own endpoint.
//   - LineTo deleted: the command is removed.
//   - CurveTo with the endpoint (pointIndex 2) referenced: the whole
//     command is removed. With only a handle referenced: the command is
//     demoted to LineTo (handles dropped, endpoint kept).
//
// Subpaths left with zero commands are dropped; if nothing survives the
// element is flagged for removal.
func DeletePoints(subPaths []SubPath, refs []PointRef) DeleteResult {
	oldCommands := Flatten(subPaths)
	selected := make(map[int]map[int]bool, len(refs))
	ordinal := -1
	oldPoints := ExtractPoints(oldCommands)
	for _, ref := range refs {
		if _, ok := PointAt(oldCommands, ref); !ok {
			continue
		}
		if selected[ref.CommandIndex] == nil {
			selected[ref.CommandIndex] = make(map[int]bool, 2)
		}
		selected[ref.CommandIndex][ref.PointIndex] = true
		if o := anchorOrdinal(oldPoints, ref); o >= 0 && (ordinal < 0 || o < ordinal) {
			ordinal = o
		}
	}
	if len(selected) == 0 {
		return DeleteResult{SubPaths: subPaths}
	}

	var out []SubPath
	flat := 0
	for _, sp := range subPaths {
		rebuilt := make(SubPath, 0, len(sp))
		for _, c := range sp {
			sel := selected[flat]
			flat++
			if len(sel) == 0 {
				rebuilt = append(rebuilt, c)
				continue
			}
			switch cmd := c.(type) {
			case MoveTo, LineTo:
				// Removed entirely; MoveTo promotion happens below.
			case CurveTo:
				if sel[2] {
					// Endpoint deleted: the whole command goes.
					continue
				}
				rebuilt = append(rebuilt, LineTo{Position: cmd.Position})
			case ClosePath:
				rebuilt = append(rebuilt, cmd)
			}
		}
		rebuilt = promoteHead(rebuilt)
		if len(rebuilt) > 0 {
			out = append(out, rebuilt)
		}
	}

	res := DeleteResult{SubPaths: out}
	if len(out) == 0 {
		res.SubPaths = nil
		res.RemoveElement = true
		return res
	}
	res.Next = nextSelection(Flatten(out), ordinal)
	return res
}

// promoteHead re-opens a subpath whose MoveTo was deleted by promoting
// the next command with an endpoint to MoveTo. Leading ClosePath
// commands left without an opening are dropped.
func promoteHead(sp SubPath) SubPath {
	for len(sp) > 0 {
		if _, ok := sp[0].(MoveTo); ok {
			return sp
		}
		if p, ok := EndPoint(sp[0]); ok {
			promoted := make(SubPath, len(sp))
			copy(promoted, sp)
			promoted[0] = MoveTo{Position: p}
			return promoted
		}
		sp = sp[1:]
	}
	return sp
}

// anchorOrdinal returns ref's position among the non-control points of
// the stream, or -1 when ref addresses a control point.
func anchorOrdinal(points []ControlPoint, ref PointRef) int {
	n := 0
	for _, cp := range points {
		if cp.IsControl {
			continue
		}
		if cp.CommandIndex == ref.CommandIndex && cp.PointIndex == ref.PointIndex {
			return n
		}
		n++
	}
	return -1
}

// nextSelection picks the non-control point at the deleted point's old
// ordinal (which is now the next point in document order), falling back
// to the last remaining one.
func nextSelection(commands []Command, ordinal int) *PointRef {
	if ordinal < 0 {
		return nil
	}
	var anchors []ControlPoint
	for _, cp := range ExtractPoints(commands) {
		if !cp.IsControl {
			anchors = append(anchors, cp)
		}
	}
	if len(anchors) == 0 {
		return nil
	}
	if ordinal >= len(anchors) {
		ordinal = len(anchors) - 1
	}
	cp := anchors[ordinal]
	return &PointRef{CommandIndex: cp.CommandIndex, PointIndex: cp.PointIndex}
}

// ConvertToCurve replaces the LineTo at index with a visually identical
// CurveTo whose handles sit at 1/3 and 2/3 along the original segment.
func ConvertToCurve(subPaths []SubPath, index int) []SubPath {
	commands := Flatten(subPaths)
	if index < 0 || index >= len(commands) {
		return subPaths
	}
	line, ok := commands[index].(LineTo)
	if !ok {
		return subPaths
	}
	from, ok := penBefore(commands, index)
	if !ok {
		return subPaths
	}
	out := make([]Command, len(commands))
	copy(out, commands)
	out[index] = CurveTo{
		Control1: from.Lerp(line.Position, 1.0/3.0),
		Control2: from.Lerp(line.Position, 2.0/3.0),
		Position: line.Position,
	}
	return Regroup(out)
}

// ConvertToLine replaces the CurveTo at index with a LineTo, dropping
// both handles and keeping the endpoint exactly.
func ConvertToLine(subPaths []SubPath, index int) []SubPath {
	commands := Flatten(subPaths)
	if index < 0 || index >= len(commands) {
		return subPaths
	}
	curve, ok := commands[index].(CurveTo)
	if !ok {
		return subPaths
	}
	out := make([]Command, len(commands))
	copy(out, commands)
	out[index] = LineTo{Position: curve.Position}
	return Regroup(out)
}

// penBefore returns the pen position just before the command at index.
func penBefore(commands []Command, index int) (Point, bool) {
	var current, start Point
	var have bool
	if index > len(commands) {
		index = len(commands)
	}
	for i := 0; i < index; i++ {
		switch cmd := commands[i].(type) {
		case MoveTo:
			start = cmd.Position
			current = cmd.Position
			have = true
		case LineTo:
			current = cmd.Position
			have = true
		case CurveTo:
			current = cmd.Position
			have = true
		case ClosePath:
			current = start
		}
	}
	return current, have
}

// CutSubPath splits one subpath into two at the referenced anchor by
// inserting a new MoveTo immediately after the cut command, displaced by
// a few units so the fragments are visibly distinct. Only legal at a
// non-control anchor that is not the subpath's final point; anything
// else is a no-op with ok=false.
func CutSubPath(subPaths []SubPath, ref PointRef) ([]SubPath, bool) {
	commands := Flatten(subPaths)
	p, okPoint := PointAt(commands, ref)
	if !okPoint {
		return subPaths, false
	}
	if _, isCurve := commands[ref.CommandIndex].(CurveTo); isCurve && ref.PointIndex != 2 {
		return subPaths, false
	}

	flat := 0
	for si, sp := range subPaths {
		if ref.CommandIndex >= flat+len(sp) {
			flat += len(sp)
			continue
		}
		local := ref.CommandIndex - flat
		rest := sp[local+1:]
		if !hasEndpoint(rest) {
			// Cutting at the final point would leave an empty fragment.
			return subPaths, false
		}
		first := sp[:local+1].Clone()
		second := make(SubPath, 0, len(rest)+1)
		second = append(second, MoveTo{Position: p.Offset(cutOffset)})
		second = append(second, rest.Clone()...)

		out := make([]SubPath, 0, len(subPaths)+1)
		out = append(out, subPaths[:si]...)
		out = append(out, first, second)
		out = append(out, subPaths[si+1:]...)
		return out, true
	}
	return subPaths, false
}

func hasEndpoint(cmds []Command) bool {
	for _, c := range cmds {
		if _, ok := EndPoint(c); ok {
			return true
		}
	}
	return false
}

// ToggleClosure adds a trailing ClosePath to an open subpath or removes
// an existing one. Out-of-range indices are no-ops.
func ToggleClosure(subPaths []SubPath, index int) []SubPath {
	if index < 0 || index >= len(subPaths) || len(subPaths[index]) == 0 {
		return subPaths
	}
	sp := subPaths[index]
	out := make([]SubPath, len(subPaths))
	copy(out, subPaths)
	if _, closed := sp[len(sp)-1].(ClosePath); closed {
		out[index] = sp[:len(sp)-1].Clone()
	} else {
		updated := sp.Clone()
		out[index] = append(updated, ClosePath{})
	}
	return out
}

// CloseToLine converts a subpath's trailing ClosePath into an explicit
// LineTo back to the MoveTo position: equivalent geometry, but now an
// editable, deletable segment.
func CloseToLine(subPaths []SubPath, index int) []SubPath {
	if index < 0 || index >= len(subPaths) || len(subPaths[index]) == 0 {
		return subPaths
	}
	sp := subPaths[index]
	if _, closed := sp[len(sp)-1].(ClosePath); !closed {
		return subPaths
	}
	start, ok := sp.Start()
	if !ok {
		return subPaths
	}
	out := make([]SubPath, len(subPaths))
	copy(out, subPaths)
	updated := sp[:len(sp)-1].Clone()
	out[index] = append(updated, LineTo{Position: start})
	return out
}
