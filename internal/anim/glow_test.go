package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageColorIdenticalSegments(t *testing.T) {
	segs := make([]Segment, 8)
	for i := range segs {
		segs[i] = Segment{Color: "#4f87ee"}
	}
	avg, err := AverageColor(segs)
	require.NoError(t, err)
	assert.Equal(t, HexColor("#4f87ee"), avg, "average of identical colors is that color")
}

func TestAverageColorChannelMean(t *testing.T) {
	segs := []Segment{
		{Color: "#000000"},
		{Color: "#ffffff"},
	}
	avg, err := AverageColor(segs)
	require.NoError(t, err)
	// (0+255)/2 = 127.5 rounds to 128.
	assert.Equal(t, HexColor("#808080"), avg)
}

func TestAverageColorEmptyIsError(t *testing.T) {
	_, err := AverageColor(nil)
	assert.ErrorIs(t, err, ErrNoSegments)
}

func TestAverageColorOfFullBorder(t *testing.T) {
	bs, err := NewBorderSpec(32, gradA, gradB)
	require.NoError(t, err)

	avg, err := AverageColor(bs.Segments(0))
	require.NoError(t, err)
	ar, ag, ab := gradA.Channels()
	br, bg, bb := gradB.Channels()
	r, g, b := avg.Channels()
	// The 32 local phases sample the gradient evenly, so each channel mean
	// sits near the midpoint of the endpoints.
	assert.InDelta(t, (float64(ar)+float64(br))/2, float64(r), 3)
	assert.InDelta(t, (float64(ag)+float64(bg))/2, float64(g), 3)
	assert.InDelta(t, (float64(ab)+float64(bb))/2, float64(b), 3)
}
