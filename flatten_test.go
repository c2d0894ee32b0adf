package vecpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenRegroupRoundTrip(t *testing.T) {
	subPaths := []SubPath{
		{
			MoveTo{Position: Pt(0, 0)},
			LineTo{Position: Pt(10, 0)},
			ClosePath{},
		},
		{
			MoveTo{Position: Pt(20, 20)},
			CurveTo{Control1: Pt(21, 20), Control2: Pt(22, 20), Position: Pt(23, 20)},
		},
	}
	got := Regroup(Flatten(subPaths))
	assert.Equal(t, subPaths, got)
}

func TestRegroupSplitsAtMoveTo(t *testing.T) {
	commands := []Command{
		MoveTo{Position: Pt(0, 0)},
		LineTo{Position: Pt(1, 0)},
		MoveTo{Position: Pt(5, 5)},
		LineTo{Position: Pt(6, 5)},
		ClosePath{},
	}
	got := Regroup(commands)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 2)
	assert.Len(t, got[1], 3)
}

func TestRegroupDanglers(t *testing.T) {
	t.Run("trailing commands stay with previous subpath", func(t *testing.T) {
		commands := []Command{
			MoveTo{Position: Pt(0, 0)},
			LineTo{Position: Pt(1, 0)},
			LineTo{Position: Pt(2, 0)},
		}
		got := Regroup(commands)
		require.Len(t, got, 1)
		assert.Len(t, got[0], 3)
	})

	t.Run("head with no MoveTo kept as own subpath", func(t *testing.T) {
		commands := []Command{
			LineTo{Position: Pt(1, 0)},
			MoveTo{Position: Pt(5, 5)},
			LineTo{Position: Pt(6, 5)},
		}
		got := Regroup(commands)
		require.Len(t, got, 2)
		assert.Equal(t, SubPath{LineTo{Position: Pt(1, 0)}}, got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Regroup(nil))
	})
}
