package vecpath

// The editable point index derives a flat, stably-ordered list of anchor
// and control points from a flattened command stream, and writes edited
// points back. Points are addressed positionally by (commandIndex,
// pointIndex); a reference becomes invalid after any structural edit and
// must be recomputed, never assumed stable.

// ControlPoint is the addressable unit the UI edits: a point plus its
// position in the command stream and the on-curve anchor it belongs to.
type ControlPoint struct {
	Point        Point
	CommandIndex int
	PointIndex   int

	// Anchor is the on-curve point this point is attached to. For
	// non-control points it is the point itself.
	Anchor    Point
	IsControl bool
}

// SelectedCommand is the global addressing key used throughout editing
// and selection: an element plus a (commandIndex, pointIndex) pair.
type SelectedCommand struct {
	ElementID    string
	CommandIndex int
	PointIndex   int
}

// PointRef addresses one editable point within a single element's
// flattened command stream.
type PointRef struct {
	CommandIndex int
	PointIndex   int
}

// ExtractPoints derives the editable points of a flattened command stream
// in document order:
//
//   - MoveTo/LineTo contribute one non-control point (pointIndex 0).
//   - CurveTo contributes handle-1 (pointIndex 0), handle-2 (pointIndex 1),
//     and the endpoint (pointIndex 2). Both handles anchor to the curve's
//     endpoint.
//   - ClosePath contributes nothing.
func ExtractPoints(commands []Command) []ControlPoint {
	out := make([]ControlPoint, 0, len(commands))
	for i, c := range commands {
		switch cmd := c.(type) {
		case MoveTo:
			out = append(out, ControlPoint{
				Point: cmd.Position, CommandIndex: i, PointIndex: 0,
				Anchor: cmd.Position,
			})
		case LineTo:
			out = append(out, ControlPoint{
				Point: cmd.Position, CommandIndex: i, PointIndex: 0,
				Anchor: cmd.Position,
			})
		case CurveTo:
			out = append(out,
				ControlPoint{
					Point: cmd.Control1, CommandIndex: i, PointIndex: 0,
					Anchor: cmd.Position, IsControl: true,
				},
				ControlPoint{
					Point: cmd.Control2, CommandIndex: i, PointIndex: 1,
					Anchor: cmd.Position, IsControl: true,
				},
				ControlPoint{
					Point: cmd.Position, CommandIndex: i, PointIndex: 2,
					Anchor: cmd.Position,
				},
			)
		}
	}
	return out
}

// PointUpdate repositions the point addressed by (CommandIndex,
// PointIndex) within a flattened command stream.
type PointUpdate struct {
	CommandIndex int
	PointIndex   int
	Position     Point
}

// ApplyUpdates returns a copy of the command stream with each update
// applied to the corresponding command field. Unrelated fields are left
// untouched, and applying the same update twice yields the same result.
//
// Updates referencing an out-of-range command index or a point index the
// command does not have are silently ignored: editing code frequently
// computes updates against a stale snapshot right before a structural
// deletion lands.
func ApplyUpdates(commands []Command, updates []PointUpdate) []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	for _, u := range updates {
		if u.CommandIndex < 0 || u.CommandIndex >= len(out) {
			continue
		}
		switch cmd := out[u.CommandIndex].(type) {
		case MoveTo:
			if u.PointIndex == 0 {
				cmd.Position = u.Position
				out[u.CommandIndex] = cmd
			}
		case LineTo:
			if u.PointIndex == 0 {
				cmd.Position = u.Position
				out[u.CommandIndex] = cmd
			}
		case CurveTo:
			switch u.PointIndex {
			case 0:
				cmd.Control1 = u.Position
			case 1:
				cmd.Control2 = u.Position
			case 2:
				cmd.Position = u.Position
			default:
				continue
			}
			out[u.CommandIndex] = cmd
		}
	}
	return out
}

// PointAt returns the current position of the point addressed by ref,
// or ok=false if the reference does not resolve.
func PointAt(commands []Command, ref PointRef) (Point, bool) {
	if ref.CommandIndex < 0 || ref.CommandIndex >= len(commands) {
		return Point{}, false
	}
	switch cmd := commands[ref.CommandIndex].(type) {
	case MoveTo:
		if ref.PointIndex == 0 {
			return cmd.Position, true
		}
	case LineTo:
		if ref.PointIndex == 0 {
			return cmd.Position, true
		}
	case CurveTo:
		switch ref.PointIndex {
		case 0:
			return cmd.Control1, true
		case 1:
			return cmd.Control2, true
		case 2:
			return cmd.Position, true
		}
	}
	return Point{}, false
}
