// Package anim is the animation engine behind NeonDeck's moving chrome:
// two-color interpolation, time-based phase drivers, border segmentation
// and the glow aggregate. Everything here is purely computational; the
// ui package decides how the results get painted.
package anim

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// HexColor is an RGB triple in "#rrggbb" form. The engine does not validate
// it: values of the wrong length or with non-hex digits produce garbage
// channels, not errors. Callers own the precondition.
type HexColor string

// Channels decodes the three byte channels. Malformed input decodes to
// whatever strconv makes of it (typically zeros).
func (c HexColor) Channels() (r, g, b uint8) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(s[0:2], 16, 8)
	gv, _ := strconv.ParseUint(s[2:4], 16, 8)
	bv, _ := strconv.ParseUint(s[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv)
}

// RGBA converts to an opaque color.RGBA for drawing.
func (c HexColor) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// WithAlpha converts to a color.RGBA with the given alpha, premultiplied.
func (c HexColor) WithAlpha(a uint8) color.RGBA {
	r, g, b := c.Channels()
	m := uint32(a)
	return color.RGBA{
		R: uint8(uint32(r) * m / 0xFF),
		G: uint8(uint32(g) * m / 0xFF),
		B: uint8(uint32(b) * m / 0xFF),
		A: a,
	}
}

func encodeHex(r, g, b uint8) HexColor {
	return HexColor(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// Canonical re-encodes the color in lowercase "#rrggbb" form, the same
// encoding Interpolate produces.
func (c HexColor) Canonical() HexColor {
	r, g, b := c.Channels()
	return encodeHex(r, g, b)
}

// Interpolate blends a toward b by ratio, per channel, rounding to the
// nearest integer. Ratio 0 returns a and ratio 1 returns b exactly (in
// canonical lowercase encoding). Ratio is not clamped; documented usage
// always derives it from a phase in [0,1].
func Interpolate(a, b HexColor, ratio float64) HexColor {
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	return encodeHex(
		lerpChannel(ar, br, ratio),
		lerpChannel(ag, bg, ratio),
		lerpChannel(ab, bb, ratio),
	)
}

func lerpChannel(a, b uint8, ratio float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*ratio))
}
