package vecpath

import (
	"math"
	"time"
)

// Element is one path element in the document: an id plus its path data.
// Edits never reach across element boundaries except through the boolean
// combination policy.
type Element struct {
	ID   string
	Data *PathData
}

// PointSnapshot caches a point's position at drag start so per-move
// deltas are always computed against a stable baseline rather than
// compounding per frame.
type PointSnapshot struct {
	Ref      SelectedCommand
	Position Point
}

// EditingPoint is the transient state of a single-point drag.
type EditingPoint struct {
	ElementID     string
	CommandIndex  int
	PointIndex    int
	IsDragging    bool
	CurrentOffset Vec2
}

// DraggingSelection is the transient state of a multi-point group drag.
type DraggingSelection struct {
	DraggedPoint     SelectedCommand
	InitialPositions []PointSnapshot

	// Alignment is the handle alignment resolved at drag start: the
	// user's explicit choice if one exists, otherwise the mode implied
	// by the pre-drag geometry. It must be resolved before the first
	// move lands, because moving a handle destroys the very collinearity
	// the default is detected from.
	Alignment Alignment
}

// deleteDebounce is the window during which a second delete request is
// ignored. Duplicate delete events from overlapping input handlers are
// expected; the debounce is owned by the session, not by package state.
const deleteDebounce = 150 * time.Millisecond

// EditSession owns a document's elements and all transient editing
// state. Every operation reads a full snapshot of the relevant path
// data, computes a new subpath slice, and writes it back atomically as
// one replacement; no partial mutation of a live path is observable.
//
// The session is single-threaded and cooperative: each operation runs to
// completion within one input-handling turn.
type EditSession struct {
	elements []*Element
	byID     map[string]*Element

	editing  *EditingPoint
	dragging *DraggingSelection

	// alignments holds the user's explicit per-anchor alignment
	// choices, keyed by element and anchor position quantized to
	// AnchorTolerance. The choice is transient; when absent, the mode
	// is derived from the pair's initial geometry.
	alignments map[anchorKey]Alignment

	lastDelete time.Time
	now        func() time.Time
}

type anchorKey struct {
	elementID string
	qx, qy    int64
}

func keyFor(elementID string, anchor Point) anchorKey {
	return anchorKey{
		elementID: elementID,
		qx:        int64(math.Round(anchor.X / AnchorTolerance)),
		qy:        int64(math.Round(anchor.Y / AnchorTolerance)),
	}
}

// NewEditSession creates a session over the given elements.
func NewEditSession(elements ...*Element) *EditSession {
	s := &EditSession{
		byID:       make(map[string]*Element, len(elements)),
		alignments: make(map[anchorKey]Alignment),
		now:        time.Now,
	}
	for _, el := range elements {
		s.Add(el)
	}
	return s
}

// Add inserts an element into the session. A nil element or duplicate id
// is ignored.
func (s *EditSession) Add(el *Element) {
	if el == nil || el.ID == "" {
		return
	}
	if _, exists := s.byID[el.ID]; exists {
		return
	}
	s.elements = append(s.elements, el)
	s.byID[el.ID] = el
}

// Remove deletes an element by id.
func (s *EditSession) Remove(id string) {
	el, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	for i, e := range s.elements {
		if e == el {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			break
		}
	}
}

// Element returns the element with the given id, or nil.
func (s *EditSession) Element(id string) *Element {
	return s.byID[id]
}

// Elements returns the session's elements in insertion order.
func (s *EditSession) Elements() []*Element {
	return s.elements
}

// SetAlignment records the user's alignment choice for the handle pair
// at the given anchor of an element.
func (s *EditSession) SetAlignment(elementID string, anchor Point, mode Alignment) {
	s.alignments[keyFor(elementID, anchor)] = mode
}

// alignmentFor returns the explicit choice for an anchor, or the mode
// implied by the pair's current geometry.
func (s *EditSession) alignmentFor(elementID string, anchor, a, b Point) Alignment {
	if mode, ok := s.alignments[keyFor(elementID, anchor)]; ok {
		return mode
	}
	return DetectAlignment(anchor, a, b)
}

// StartDrag begins dragging sel together with any extra selected points.
// Initial positions of every member are snapshotted as the baseline for
// all subsequent DragTo deltas.
func (s *EditSession) StartDrag(sel SelectedCommand, extra ...SelectedCommand) bool {
	el := s.byID[sel.ElementID]
	if el == nil {
		return false
	}
	members := append([]SelectedCommand{sel}, extra...)
	snapshots := make([]PointSnapshot, 0, len(members))
	for _, m := range members {
		target := s.byID[m.ElementID]
		if target == nil {
			continue
		}
		p, ok := PointAt(Flatten(target.Data.SubPaths), PointRef{m.CommandIndex, m.PointIndex})
		if !ok {
			continue
		}
		snapshots = append(snapshots, PointSnapshot{Ref: m, Position: p})
	}
	if len(snapshots) == 0 {
		return false
	}
	s.editing = &EditingPoint{
		ElementID:    sel.ElementID,
		CommandIndex: sel.CommandIndex,
		PointIndex:   sel.PointIndex,
		IsDragging:   true,
	}
	s.dragging = &DraggingSelection{
		DraggedPoint:     sel,
		InitialPositions: snapshots,
		Alignment:        s.startAlignment(el, sel),
	}
	return true
}

// startAlignment resolves the dragged handle's alignment from the
// pre-drag geometry.
func (s *EditSession) startAlignment(el *Element, sel SelectedCommand) Alignment {
	commands := Flatten(el.Data.SubPaths)
	ref := PointRef{sel.CommandIndex, sel.PointIndex}
	partner, anchor, ok := HandlePartner(commands, ref)
	if !ok {
		return AlignmentIndependent
	}
	moved, okMoved := PointAt(commands, ref)
	paired, okPaired := PointAt(commands, partner)
	if !okMoved || !okPaired {
		return AlignmentIndependent
	}
	return s.alignmentFor(sel.ElementID, anchor, moved, paired)
}

// DragTo moves every dragged point to its snapshot position plus offset,
// then solves handle alignment for the dragged point once. Calling it
// repeatedly with growing offsets does not compound: deltas are always
// relative to the drag-start baseline.
func (s *EditSession) DragTo(offset Vec2) {
	if s.dragging == nil || s.editing == nil {
		return
	}
	s.editing.CurrentOffset = offset

	perElement := make(map[string][]PointUpdate)
	for _, snap := range s.dragging.InitialPositions {
		perElement[snap.Ref.ElementID] = append(perElement[snap.Ref.ElementID], PointUpdate{
			CommandIndex: snap.Ref.CommandIndex,
			PointIndex:   snap.Ref.PointIndex,
			Position:     snap.Position.Offset(offset),
		})
	}
	for id, updates := range perElement {
		el := s.byID[id]
		if el == nil {
			continue
		}
		el.Data.SubPaths = Regroup(ApplyUpdates(Flatten(el.Data.SubPaths), updates))
	}
	s.solveDraggedAlignment()
}

// solveDraggedAlignment keeps the dragged handle's partner consistent.
// It runs once per move, not per frame, so paired handles never feed
// back into each other.
func (s *EditSession) solveDraggedAlignment() {
	drag := s.dragging.DraggedPoint
	el := s.byID[drag.ElementID]
	if el == nil {
		return
	}
	commands := Flatten(el.Data.SubPaths)
	ref := PointRef{drag.CommandIndex, drag.PointIndex}
	partner, anchor, ok := HandlePartner(commands, ref)
	if !ok {
		return
	}
	moved, okMoved := PointAt(commands, ref)
	paired, okPaired := PointAt(commands, partner)
	if !okMoved || !okPaired {
		return
	}
	// An explicit choice made mid-drag wins; otherwise use the mode
	// resolved at drag start, never the already-moved geometry.
	mode := s.dragging.Alignment
	if m, ok := s.alignments[keyFor(drag.ElementID, anchor)]; ok {
		mode = m
	}
	solved := SolveAlignment(mode, anchor, moved, paired)
	if solved == paired {
		return
	}
	el.Data.SubPaths = Regroup(ApplyUpdates(commands, []PointUpdate{{
		CommandIndex: partner.CommandIndex,
		PointIndex:   partner.PointIndex,
		Position:     solved,
	}}))
}

// EndDrag finalizes the drag and clears transient state.
func (s *EditSession) EndDrag() {
	s.editing = nil
	s.dragging = nil
}

// Cancel unconditionally clears all transient drag state, regardless of
// what stage the drag was in. It is idempotent and callable at any time,
// e.g. on focus loss.
func (s *EditSession) Cancel() {
	s.editing = nil
	s.dragging = nil
}

// Editing returns the in-progress single-point drag state, or nil.
func (s *EditSession) Editing() *EditingPoint {
	return s.editing
}

// MoveSelected moves every selected point by delta, grouped by owning
// element. Each element's subpaths are replaced wholesale.
func (s *EditSession) MoveSelected(sels []SelectedCommand, delta Vec2) {
	for id, refs := range groupByElement(sels) {
		el := s.byID[id]
		if el == nil {
			continue
		}
		el.Data.SubPaths = MovePoints(el.Data.SubPaths, refs, delta)
	}
}

// DeleteSelected deletes the selected points, grouped by owning element.
// It returns the ids of elements that were removed entirely and the
// suggested next selection. Requests landing within the debounce window
// of the previous delete are ignored.
func (s *EditSession) DeleteSelected(sels []SelectedCommand) (removed []string, next *SelectedCommand) {
	now := s.now()
	if now.Sub(s.lastDelete) < deleteDebounce {
		Logger().Debug("delete ignored inside debounce window")
		return nil, nil
	}
	s.lastDelete = now

	groups := groupByElement(sels)
	// Walk a snapshot of the element list so the suggested next
	// selection is deterministic in document order, and so Remove can
	// shrink the live list mid-loop.
	elements := append([]*Element(nil), s.elements...)
	for _, el := range elements {
		refs, ok := groups[el.ID]
		if !ok {
			continue
		}
		res := DeletePoints(el.Data.SubPaths, refs)
		if res.RemoveElement {
			s.Remove(el.ID)
			removed = append(removed, el.ID)
			continue
		}
		el.Data.SubPaths = res.SubPaths
		if next == nil && res.Next != nil {
			next = &SelectedCommand{
				ElementID:    el.ID,
				CommandIndex: res.Next.CommandIndex,
				PointIndex:   res.Next.PointIndex,
			}
		}
	}
	return removed, next
}

// ConvertCommand switches the addressed command between LineTo and
// CurveTo representations.
func (s *EditSession) ConvertCommand(elementID string, commandIndex int) {
	el := s.byID[elementID]
	if el == nil {
		return
	}
	commands := Flatten(el.Data.SubPaths)
	if commandIndex < 0 || commandIndex >= len(commands) {
		return
	}
	switch commands[commandIndex].(type) {
	case LineTo:
		el.Data.SubPaths = ConvertToCurve(el.Data.SubPaths, commandIndex)
	case CurveTo:
		el.Data.SubPaths = ConvertToLine(el.Data.SubPaths, commandIndex)
	}
}

func groupByElement(sels []SelectedCommand) map[string][]PointRef {
	out := make(map[string][]PointRef)
	for _, sel := range sels {
		out[sel.ElementID] = append(out[sel.ElementID], PointRef{
			CommandIndex: sel.CommandIndex,
			PointIndex:   sel.PointIndex,
		})
	}
	return out
}

// SetClock overrides the session's time source. Tests use it to step
// through the delete debounce window deterministically.
func (s *EditSession) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
