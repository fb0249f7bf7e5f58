package anim

import (
	"errors"
	"math"
)

// ErrNoSegments is returned when asked to average an empty segment set.
var ErrNoSegments = errors.New("glow: no segments to average")

// AverageColor reduces the segment colors to one representative color: the
// unweighted channel-wise mean, rounded. The launcher paints the glow halo
// with it so the glow itself does not have to be segmented. Segment counts
// are fixed and non-zero in practice; an empty slice is a configuration
// error and reports ErrNoSegments.
func AverageColor(segments []Segment) (HexColor, error) {
	if len(segments) == 0 {
		return "", ErrNoSegments
	}
	var sr, sg, sb float64
	for _, seg := range segments {
		r, g, b := seg.Color.Channels()
		sr += float64(r)
		sg += float64(g)
		sb += float64(b)
	}
	n := float64(len(segments))
	return encodeHex(
		uint8(math.Round(sr/n)),
		uint8(math.Round(sg/n)),
		uint8(math.Round(sb/n)),
	), nil
}
