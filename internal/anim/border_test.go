package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	gradA = HexColor("#00bfff")
	gradB = HexColor("#9d4edd")
)

func TestNewBorderSpecValidation(t *testing.T) {
	_, err := NewBorderSpec(30, gradA, gradB)
	assert.Error(t, err, "count not divisible by 4 must be rejected")

	_, err = NewBorderSpec(0, gradA, gradB)
	assert.Error(t, err)

	_, err = NewBorderSpec(-8, gradA, gradB)
	assert.Error(t, err)

	bs, err := NewBorderSpec(DefaultSegmentCount, gradA, gradB)
	require.NoError(t, err)
	assert.Equal(t, 32, bs.Count())
	assert.Equal(t, 8, bs.PerSide())
}

func TestSegmentsCountAndSides(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)

	for _, phase := range []float64{0, 0.25, 0.5, 0.99} {
		segs := bs.Segments(phase)
		require.Len(t, segs, 32)

		perSide := map[Side]int{}
		for _, s := range segs {
			perSide[s.Side]++
		}
		for _, side := range []Side{SideTop, SideRight, SideBottom, SideLeft} {
			assert.Equal(t, 8, perSide[side], "side %s must hold count/4 segments", side)
		}
	}
}

func TestSegmentsCoverEachSideExactly(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)
	segs := bs.Segments(0.37)

	sums := map[Side]float64{}
	for _, s := range segs {
		// No overlap: each segment starts where the previous ended.
		assert.InDelta(t, float64(s.Index)*(100.0/8), s.Offset, 1e-9)
		sums[s.Side] += s.Length
	}
	for side, sum := range sums {
		assert.InDelta(t, 100.0, sum, 1e-9, "side %s lengths must sum to 100%%", side)
	}
}

func TestLastSegmentClosesSide(t *testing.T) {
	// 12 segments → 3 per side, share 33.33..%: the trailing segment must be
	// stretched to end exactly at 100.
	bs, err := NewBorderSpec(12, gradA, gradB)
	require.NoError(t, err)
	segs := bs.Segments(0)

	for _, s := range segs {
		if s.TrailingCorner {
			assert.InDelta(t, 100.0, s.Offset+s.Length, 1e-9)
		}
	}
}

func TestCornerFlags(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)
	segs := bs.Segments(0)

	for _, s := range segs {
		assert.Equal(t, s.Index == 0, s.LeadingCorner)
		assert.Equal(t, s.Index == bs.PerSide()-1, s.TrailingCorner)
	}
}

func TestPhaseAdvanceRotatesColors(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)

	base := bs.Segments(0)
	for _, steps := range []int{1, 4, 16, 31} {
		phase := float64(steps) / 32
		shifted := bs.Segments(phase)
		for i := range shifted {
			want := base[(i+steps)%32].Color
			assert.Equal(t, want, shifted[i].Color,
				"phase %v must rotate colors by %d segments", phase, steps)
		}
	}
}

func TestSegmentsPhaseWrapsModOne(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)

	at := bs.Segments(0.25)
	wrapped := bs.Segments(1.25)
	for i := range at {
		assert.Equal(t, at[i].Color, wrapped[i].Color)
	}
}

func TestSegmentColorsMatchInterpolator(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)
	phase := 0.125
	segs := bs.Segments(phase)
	for i, s := range segs {
		local := math.Mod(phase+float64(i)/32, 1)
		assert.Equal(t, Interpolate(gradA, gradB, local), s.Color)
	}
}
