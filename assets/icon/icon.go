// Package icon renders the NeonDeck window icon at runtime: a launcher tile
// ringed by the same two-color gradient the live border animation cycles
// through, sampled via the animation engine's interpolator.
package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/wdevries/neondeck/internal/anim"
)

var (
	darkBG   = color.RGBA{R: 0x0e, G: 0x0e, B: 0x13, A: 0xFF}
	tileCol  = color.RGBA{R: 0x1c, G: 0x1c, B: 0x24, A: 0xFF}
	glyphCol = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xFF}

	gradA = anim.HexColor("#00bfff")
	gradB = anim.HexColor("#9d4edd")
)

// Generate returns 64x64 and 32x32 icon images for ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, darkBG)

	// Gradient ring traced around the tile, one interpolator sample per
	// angular step. The static twin of the animated border.
	drawGradientRing(img, s)

	// The tile itself
	inset := s * 0.28
	fillRoundedRect(img, inset, inset, s-2*inset, s-2*inset, s*0.08, tileCol)

	// Glyph dot in the tile center
	fillCircle(img, s*0.5, s*0.5, s*0.07, glyphCol)

	return img
}

// drawGradientRing paints a rounded square ring whose color walks the
// gradient: angle 0..π maps 0→1 and π..2π maps back, the ping-pong profile.
func drawGradientRing(img *image.RGBA, s float64) {
	cx, cy := s/2, s/2
	half := s*0.5 - s*0.12
	width := s * 0.06

	steps := int(s * 16)
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		ratio := angle / math.Pi
		if ratio > 1 {
			ratio = 2 - ratio
		}
		clr := anim.Interpolate(gradA, gradB, ratio).RGBA()

		// Project the angle onto the square ring's perimeter.
		dx, dy := math.Cos(angle), math.Sin(angle)
		scale := half / math.Max(math.Abs(dx), math.Abs(dy))
		fillCircle(img, cx+dx*scale, cy+dy*scale, width, clr)
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	x0, y0 := int(xf), int(yf)
	x1, y1 := int(xf+wf), int(yf+hf)

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	var dx, dy float64
	switch {
	case fx < xf+r && fy < yf+r:
		dx, dy = xf+r-fx, yf+r-fy
	case fx > xf+wf-r && fy < yf+r:
		dx, dy = fx-(xf+wf-r), yf+r-fy
	case fx < xf+r && fy > yf+hf-r:
		dx, dy = xf+r-fx, fy-(yf+hf-r)
	case fx > xf+wf-r && fy > yf+hf-r:
		dx, dy = fx-(xf+wf-r), fy-(yf+hf-r)
	default:
		return true
	}
	return dx*dx+dy*dy <= r*r
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	inv := 0xFFFF - a0
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(((r0*a0 + er*inv) / 0xFFFF) >> 8),
		G: uint8(((g0*a0 + eg*inv) / 0xFFFF) >> 8),
		B: uint8(((b0*a0 + eb*inv) / 0xFFFF) >> 8),
		A: 0xFF,
	})
}
