package vecpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubPathIsClosed(t *testing.T) {
	tests := []struct {
		name string
		sp   SubPath
		want bool
	}{
		{
			name: "explicit close",
			sp: SubPath{
				MoveTo{Position: Pt(0, 0)},
				LineTo{Position: Pt(10, 0)},
				LineTo{Position: Pt(10, 10)},
				ClosePath{},
			},
			want: true,
		},
		{
			name: "coincident endpoints",
			sp: SubPath{
				MoveTo{Position: Pt(0, 0)},
				LineTo{Position: Pt(10, 0)},
				LineTo{Position: Pt(0.005, 0)},
			},
			want: true,
		},
		{
			name: "open",
			sp: SubPath{
				MoveTo{Position: Pt(0, 0)},
				LineTo{Position: Pt(10, 0)},
			},
			want: false,
		},
		{
			name: "empty",
			sp:   SubPath{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sp.IsClosed())
		})
	}
}

func TestEndPoint(t *testing.T) {
	p, ok := EndPoint(CurveTo{Control1: Pt(1, 1), Control2: Pt(2, 2), Position: Pt(3, 3)})
	require.True(t, ok)
	assert.Equal(t, Pt(3, 3), p)

	_, ok = EndPoint(ClosePath{})
	assert.False(t, ok)
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#fff", RGBA{1, 1, 1, 1}},
		{"#000000", RGBA{0, 0, 0, 1}},
		{"ff0000", RGBA{1, 0, 0, 1}},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"bogus", RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got := Hex(tt.hex)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestPathDataCloneIsDeep(t *testing.T) {
	m := Translate(5, 5)
	pd := &PathData{
		SubPaths: []SubPath{{
			MoveTo{Position: Pt(0, 0)},
			LineTo{Position: Pt(10, 0)},
		}},
		FillColor: RGB(1, 0, 0),
		Transform: &m,
	}
	clone := pd.Clone()
	clone.SubPaths[0][1] = LineTo{Position: Pt(99, 99)}
	clone.Transform.E = 42

	assert.Equal(t, LineTo{Position: Pt(10, 0)}, pd.SubPaths[0][1])
	assert.Equal(t, 5.0, pd.Transform.E)
}

func TestWorldSpace(t *testing.T) {
	m := Translate(10, 20)
	pd := &PathData{
		SubPaths: []SubPath{{
			MoveTo{Position: Pt(0, 0)},
			CurveTo{Control1: Pt(1, 0), Control2: Pt(2, 0), Position: Pt(3, 0)},
			ClosePath{},
		}},
		Transform: &m,
	}
	world := pd.WorldSpace()
	require.Nil(t, world.Transform)
	assert.Equal(t, MoveTo{Position: Pt(10, 20)}, world.SubPaths[0][0])
	assert.Equal(t, CurveTo{Control1: Pt(11, 20), Control2: Pt(12, 20), Position: Pt(13, 20)}, world.SubPaths[0][1])

	// The source is untouched.
	assert.Equal(t, MoveTo{Position: Pt(0, 0)}, pd.SubPaths[0][0])
}

func TestBoundingBox(t *testing.T) {
	pd := &PathData{
		SubPaths: []SubPath{{
			MoveTo{Position: Pt(0, 0)},
			CurveTo{Control1: Pt(50, -30), Control2: Pt(70, 30), Position: Pt(100, 0)},
		}},
	}
	box, ok := pd.BoundingBox()
	require.True(t, ok)
	// Conservative hull includes the off-curve handles.
	assert.Equal(t, Pt(0, -30), box.Min)
	assert.Equal(t, Pt(100, 30), box.Max)

	_, ok = (&PathData{}).BoundingBox()
	assert.False(t, ok)
}

func TestCircleSubPath(t *testing.T) {
	sp := CircleSubPath(Pt(5, 5), 2)
	require.True(t, sp.IsClosed())

	start, ok := sp.Start()
	require.True(t, ok)
	assert.Equal(t, Pt(7, 5), start)

	// All anchors and handles stay within the circumscribing box.
	box := Rect{Min: Pt(3, 3), Max: Pt(7, 7)}
	for _, cp := range ExtractPoints(sp) {
		assert.True(t, box.Contains(cp.Point), "point %v outside box", cp.Point)
	}
}

func TestIsOpen(t *testing.T) {
	closed := &PathData{SubPaths: []SubPath{{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(1, 0)},
		ClosePath{},
	}}}
	assert.False(t, closed.IsOpen())

	mixed := &PathData{SubPaths: []SubPath{
		closed.SubPaths[0],
		{MoveTo{Position: Pt(0, 0)}, LineTo{Position: Pt(5, 5)}},
	}}
	assert.True(t, mixed.IsOpen())
}
