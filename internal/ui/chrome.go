package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wdevries/neondeck/internal/anim"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// SegmentRect maps one border segment to its pixel rectangle around the
// content rect, for a border band of the given thickness drawn just outside
// the content. Offsets follow the clockwise perimeter winding: top
// left→right, right top→bottom, bottom right→left, left bottom→top.
func SegmentRect(seg anim.Segment, content Rect, thickness float64) Rect {
	switch seg.Side {
	case anim.SideTop:
		return Rect{
			X: content.X + seg.Offset/100*content.W,
			Y: content.Y - thickness,
			W: seg.Length / 100 * content.W,
			H: thickness,
		}
	case anim.SideRight:
		return Rect{
			X: content.X + content.W,
			Y: content.Y + seg.Offset/100*content.H,
			W: thickness,
			H: seg.Length / 100 * content.H,
		}
	case anim.SideBottom:
		return Rect{
			X: content.X + content.W - (seg.Offset+seg.Length)/100*content.W,
			Y: content.Y + content.H,
			W: seg.Length / 100 * content.W,
			H: thickness,
		}
	default: // SideLeft
		return Rect{
			X: content.X - thickness,
			Y: content.Y + content.H - (seg.Offset+seg.Length)/100*content.H,
			W: thickness,
			H: seg.Length / 100 * content.H,
		}
	}
}

// cornerPoint returns the content-rect corner a corner-flagged segment
// rounds: the side's start corner for leading, its end corner for trailing.
func cornerPoint(side anim.Side, trailing bool, content Rect) (float64, float64) {
	type pt struct{ x, y float64 }
	tl := pt{content.X, content.Y}
	tr := pt{content.X + content.W, content.Y}
	br := pt{content.X + content.W, content.Y + content.H}
	bl := pt{content.X, content.Y + content.H}

	var lead, trail pt
	switch side {
	case anim.SideTop:
		lead, trail = tl, tr
	case anim.SideRight:
		lead, trail = tr, br
	case anim.SideBottom:
		lead, trail = br, bl
	default:
		lead, trail = bl, tl
	}
	if trailing {
		return trail.x, trail.y
	}
	return lead.x, lead.y
}

// DrawSegmentBorder paints the segment sequence as a border band around the
// content rect. Corner-flagged segments also paint a disc on their corner so
// the four bands close into one continuous rounded outline; the content
// drawn afterwards covers the disc's inner bleed.
func DrawSegmentBorder(dst *ebiten.Image, content Rect, thickness float64, segs []anim.Segment) {
	for _, seg := range segs {
		r := SegmentRect(seg, content, thickness)
		clr := seg.Color.RGBA()
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)

		if seg.LeadingCorner {
			cx, cy := cornerPoint(seg.Side, false, content)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(thickness), clr, false)
		}
		if seg.TrailingCorner {
			cx, cy := cornerPoint(seg.Side, true, content)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(thickness), clr, false)
		}
	}
}

// glowAlphas is the per-layer alpha falloff for the halo rings.
var glowAlphas = [GlowLayers]uint8{0x50, 0x34, 0x20, 0x10}

// DrawGlowHalo paints concentric translucent rings of the aggregate color
// around the content rect, widening and fading outwards. The glow is one
// color for the whole halo so it does not have to be segmented.
func DrawGlowHalo(dst *ebiten.Image, content Rect, thickness float64, glow anim.HexColor) {
	for i := 0; i < GlowLayers; i++ {
		inflate := thickness + float64(i)*GlowSpread
		clr := glow.WithAlpha(glowAlphas[i])
		vector.StrokeRect(dst,
			float32(content.X-inflate), float32(content.Y-inflate),
			float32(content.W+2*inflate), float32(content.H+2*inflate),
			float32(GlowSpread), clr, false)
	}
}
