package vecpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkforge/vecpath"
	"github.com/inkforge/vecpath/geomkernel"
)

func TestContourBuilderStraightStroke(t *testing.T) {
	b := vecpath.NewContourBuilder(geomkernel.New())

	stroke := make([]vecpath.Point, 0, 11)
	for i := 0; i <= 10; i++ {
		stroke = append(stroke, vecpath.Pt(float64(i)*10, 0))
	}
	got := b.Build(stroke, 10)
	require.Len(t, got, 1)
	require.True(t, got[0].IsClosed())

	// A 100-unit horizontal stroke with radius 10 and round caps spans
	// 120 along x and 20 along y.
	pd := &vecpath.PathData{SubPaths: got}
	box, ok := pd.BoundingBox()
	require.True(t, ok)
	assert.InDelta(t, 120, box.Width(), 1.0)
	assert.InDelta(t, 20, box.Height(), 1.0)
	assert.InDelta(t, -10, box.Min.X, 1.0)
	assert.InDelta(t, -10, box.Min.Y, 1.0)
}

func TestContourBuilderDotFallback(t *testing.T) {
	k := geomkernel.New()

	t.Run("enabled by default", func(t *testing.T) {
		b := vecpath.NewContourBuilder(k)
		got := b.Build([]vecpath.Point{vecpath.Pt(5, 5)}, 3)
		require.Len(t, got, 1)
		require.True(t, got[0].IsClosed())

		start, ok := got[0].Start()
		require.True(t, ok)
		assert.Equal(t, vecpath.Pt(8, 5), start)
	})

	t.Run("disabled yields nothing", func(t *testing.T) {
		b := vecpath.NewContourBuilder(k, vecpath.WithDotFallback(false))
		assert.Nil(t, b.Build([]vecpath.Point{vecpath.Pt(5, 5)}, 3))
	})
}

func TestContourBuilderDegenerateInput(t *testing.T) {
	b := vecpath.NewContourBuilder(geomkernel.New())

	assert.Nil(t, b.Build(nil, 10))
	assert.Nil(t, b.Build([]vecpath.Point{vecpath.Pt(0, 0), vecpath.Pt(50, 0)}, 0))
	assert.Nil(t, b.Build([]vecpath.Point{vecpath.Pt(0, 0), vecpath.Pt(50, 0)}, -1))
}

func TestContourBuilderRegionRoundTrip(t *testing.T) {
	k := geomkernel.New()
	b := vecpath.NewContourBuilder(k)

	stroke := []vecpath.Point{
		vecpath.Pt(0, 0),
		vecpath.Pt(50, 0),
		vecpath.Pt(100, 0),
	}
	got := b.Build(stroke, 5)
	require.Len(t, got, 1)

	// The outline must form a valid closed region the boolean operators
	// can consume, with roughly stroke-length * width of area.
	region, err := k.Region(got)
	require.NoError(t, err)
	assert.False(t, region.IsEmpty())
	assert.InDelta(t, 1000, region.Area(), 100)
}
