package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdevries/neondeck/internal/anim"
)

func TestSegmentRectCoversEachSide(t *testing.T) {
	content := Rect{X: 100, Y: 50, W: 400, H: 200}
	bs, err := anim.NewBorderSpec(32, "#00bfff", "#9d4edd")
	require.NoError(t, err)
	segs := bs.Segments(0)

	widths := map[anim.Side]float64{}
	for _, seg := range segs {
		r := SegmentRect(seg, content, BorderThickness)
		switch seg.Side {
		case anim.SideTop, anim.SideBottom:
			assert.InDelta(t, BorderThickness, r.H, 1e-9)
			widths[seg.Side] += r.W
		default:
			assert.InDelta(t, BorderThickness, r.W, 1e-9)
			widths[seg.Side] += r.H
		}
	}
	assert.InDelta(t, content.W, widths[anim.SideTop], 1e-9)
	assert.InDelta(t, content.W, widths[anim.SideBottom], 1e-9)
	assert.InDelta(t, content.H, widths[anim.SideRight], 1e-9)
	assert.InDelta(t, content.H, widths[anim.SideLeft], 1e-9)
}

func TestSegmentRectWindingIsClockwise(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 100, H: 100}
	bs, err := anim.NewBorderSpec(8, "#000000", "#ffffff")
	require.NoError(t, err)
	segs := bs.Segments(0) // 2 per side

	// Top runs left→right.
	top0 := SegmentRect(segs[0], content, 4)
	top1 := SegmentRect(segs[1], content, 4)
	assert.Less(t, top0.X, top1.X)
	assert.InDelta(t, -4.0, top0.Y, 1e-9, "border band sits outside the content")

	// Right runs top→bottom.
	right0 := SegmentRect(segs[2], content, 4)
	right1 := SegmentRect(segs[3], content, 4)
	assert.Less(t, right0.Y, right1.Y)
	assert.InDelta(t, 100.0, right0.X, 1e-9)

	// Bottom runs right→left.
	bottom0 := SegmentRect(segs[4], content, 4)
	bottom1 := SegmentRect(segs[5], content, 4)
	assert.Greater(t, bottom0.X, bottom1.X)

	// Left runs bottom→top.
	left0 := SegmentRect(segs[6], content, 4)
	left1 := SegmentRect(segs[7], content, 4)
	assert.Greater(t, left0.Y, left1.Y)
}

func TestSegmentRectsTileWithoutGaps(t *testing.T) {
	content := Rect{X: 10, Y: 20, W: 300, H: 150}
	bs, err := anim.NewBorderSpec(12, "#00bfff", "#9d4edd") // uneven 100/3 shares
	require.NoError(t, err)
	segs := bs.Segments(0.6)

	var prev *Rect
	for i := range segs {
		if segs[i].Side != anim.SideTop {
			continue
		}
		r := SegmentRect(segs[i], content, 4)
		if prev != nil {
			assert.InDelta(t, prev.X+prev.W, r.X, 1e-9, "consecutive segments must abut")
		}
		cp := r
		prev = &cp
	}
	require.NotNil(t, prev)
	assert.InDelta(t, content.X+content.W, prev.X+prev.W, 1e-9, "trailing segment reaches the corner")
}

func TestCornerPointsFollowWinding(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 10, H: 20}

	x, y := cornerPoint(anim.SideTop, false, content)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
	x, y = cornerPoint(anim.SideTop, true, content)
	assert.Equal(t, [2]float64{10, 0}, [2]float64{x, y})

	x, y = cornerPoint(anim.SideBottom, false, content)
	assert.Equal(t, [2]float64{10, 20}, [2]float64{x, y})
	x, y = cornerPoint(anim.SideLeft, true, content)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y}, "left side ends where top begins")
}
