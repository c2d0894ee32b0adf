package vecpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zigzag() []SubPath {
	return []SubPath{{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(10, 10)},
		LineTo{Position: Pt(20, 0)},
		LineTo{Position: Pt(30, 10)},
	}}
}

func TestMovePoints(t *testing.T) {
	got := MovePoints(zigzag(), []PointRef{
		{CommandIndex: 1, PointIndex: 0},
		{CommandIndex: 2, PointIndex: 0},
	}, V2(5, -5))

	require.Len(t, got, 1)
	assert.Equal(t, LineTo{Position: Pt(15, 5)}, got[0][1])
	assert.Equal(t, LineTo{Position: Pt(25, -5)}, got[0][2])
	assert.Equal(t, LineTo{Position: Pt(30, 10)}, got[0][3])
}

func TestMovePointsStaleRefsNoOp(t *testing.T) {
	in := zigzag()
	got := MovePoints(in, []PointRef{{CommandIndex: 99, PointIndex: 0}}, V2(5, 5))
	assert.Equal(t, in, got)
}

func TestDeletePointsLineTo(t *testing.T) {
	res := DeletePoints(zigzag(), []PointRef{{CommandIndex: 1, PointIndex: 0}})
	require.False(t, res.RemoveElement)
	require.Len(t, res.SubPaths, 1)
	assert.Equal(t, SubPath{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(20, 0)},
		LineTo{Position: Pt(30, 10)},
	}, res.SubPaths[0])

	// Next selection is the point that slid into the deleted ordinal.
	require.NotNil(t, res.Next)
	p, ok := PointAt(Flatten(res.SubPaths), *res.Next)
	require.True(t, ok)
	assert.Equal(t, Pt(20, 0), p)
}

func TestDeletePointsMoveToPromotesNext(t *testing.T) {
	res := DeletePoints(zigzag(), []PointRef{{CommandIndex: 0, PointIndex: 0}})
	require.Len(t, res.SubPaths, 1)
	assert.Equal(t, MoveTo{Position: Pt(10, 10)}, res.SubPaths[0][0])
	assert.Len(t, res.SubPaths[0], 3)
}

func TestDeletePointsCurve(t *testing.T) {
	curve := []SubPath{{
		MoveTo{Position: Pt(0, 0)},
		CurveTo{Control1: Pt(3, 5), Control2: Pt(7, 5), Position: Pt(10, 0)},
		LineTo{Position: Pt(20, 0)},
	}}

	t.Run("handle deletion demotes to LineTo", func(t *testing.T) {
		res := DeletePoints(curve, []PointRef{{CommandIndex: 1, PointIndex: 0}})
		require.Len(t, res.SubPaths, 1)
		assert.Equal(t, LineTo{Position: Pt(10, 0)}, res.SubPaths[0][1])
		assert.Len(t, res.SubPaths[0], 3)
	})

	t.Run("endpoint deletion removes the command", func(t *testing.T) {
		res := DeletePoints(curve, []PointRef{{CommandIndex: 1, PointIndex: 2}})
		require.Len(t, res.SubPaths, 1)
		assert.Equal(t, SubPath{
			MoveTo{Position: Pt(0, 0)},
			LineTo{Position: Pt(20, 0)},
		}, res.SubPaths[0])
	})
}

func TestDeletePointsEverythingRemovesElement(t *testing.T) {
	subPaths := []SubPath{{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(10, 0)},
	}}
	res := DeletePoints(subPaths, []PointRef{
		{CommandIndex: 0, PointIndex: 0},
		{CommandIndex: 1, PointIndex: 0},
	})
	assert.True(t, res.RemoveElement)
	assert.Nil(t, res.SubPaths)
	assert.Nil(t, res.Next)
}

func TestDeletePointsLastAnchorSelectsPrevious(t *testing.T) {
	res := DeletePoints(zigzag(), []PointRef{{CommandIndex: 3, PointIndex: 0}})
	require.NotNil(t, res.Next)
	p, ok := PointAt(Flatten(res.SubPaths), *res.Next)
	require.True(t, ok)
	assert.Equal(t, Pt(20, 0), p)
}

func TestConvertToCurve(t *testing.T) {
	got := ConvertToCurve(zigzag(), 1)
	require.Len(t, got, 1)
	curve, ok := got[0][1].(CurveTo)
	require.True(t, ok)

	// Handles sit at 1/3 and 2/3 of the original segment.
	assert.True(t, curve.Control1.Approx(Pt(10.0/3, 10.0/3), 1e-9))
	assert.True(t, curve.Control2.Approx(Pt(20.0/3, 20.0/3), 1e-9))
	assert.Equal(t, Pt(10, 10), curve.Position)

	t.Run("non-line target is a no-op", func(t *testing.T) {
		in := zigzag()
		assert.Equal(t, in, ConvertToCurve(in, 0))
		assert.Equal(t, in, ConvertToCurve(in, 99))
	})
}

func TestConvertToLine(t *testing.T) {
	curved := ConvertToCurve(zigzag(), 2)
	got := ConvertToLine(curved, 2)
	assert.Equal(t, zigzag(), got)
}

func TestConvertRoundTrip(t *testing.T) {
	in := zigzag()
	assert.Equal(t, in, ConvertToLine(ConvertToCurve(in, 1), 1))
}

func TestCutSubPath(t *testing.T) {
	got, ok := CutSubPath(zigzag(), PointRef{CommandIndex: 1, PointIndex: 0})
	require.True(t, ok)
	require.Len(t, got, 2)

	assert.Equal(t, SubPath{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(10, 10)},
	}, got[0])

	// The second fragment opens at the cut point nudged by the offset.
	start, okStart := got[1].Start()
	require.True(t, okStart)
	assert.Equal(t, Pt(13, 13), start)
	assert.Equal(t, LineTo{Position: Pt(20, 0)}, got[1][1])
}

func TestCutSubPathRejects(t *testing.T) {
	in := zigzag()

	t.Run("final point", func(t *testing.T) {
		got, ok := CutSubPath(in, PointRef{CommandIndex: 3, PointIndex: 0})
		assert.False(t, ok)
		assert.Equal(t, in, got)
	})

	t.Run("curve handle", func(t *testing.T) {
		curved := ConvertToCurve(in, 1)
		got, ok := CutSubPath(curved, PointRef{CommandIndex: 1, PointIndex: 0})
		assert.False(t, ok)
		assert.Equal(t, curved, got)
	})

	t.Run("stale ref", func(t *testing.T) {
		got, ok := CutSubPath(in, PointRef{CommandIndex: 42, PointIndex: 0})
		assert.False(t, ok)
		assert.Equal(t, in, got)
	})
}

func TestToggleClosure(t *testing.T) {
	open := zigzag()

	closed := ToggleClosure(open, 0)
	require.Len(t, closed[0], 5)
	assert.IsType(t, ClosePath{}, closed[0][4])

	reopened := ToggleClosure(closed, 0)
	assert.Equal(t, open, reopened)

	assert.Equal(t, open, ToggleClosure(open, 5))
}

func TestCloseToLine(t *testing.T) {
	closed := ToggleClosure(zigzag(), 0)
	got := CloseToLine(closed, 0)
	require.Len(t, got[0], 5)
	assert.Equal(t, LineTo{Position: Pt(0, 0)}, got[0][4])

	t.Run("open subpath is a no-op", func(t *testing.T) {
		in := zigzag()
		assert.Equal(t, in, CloseToLine(in, 0))
	})
}
