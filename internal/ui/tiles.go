package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wdevries/neondeck/internal/anim"
)

// Tile is one launcher shortcut in the grid.
type Tile struct {
	Name  string
	Glyph string
}

// TileGrid is a fixed-column grid of shortcut tiles with smooth vertical
// scrolling. The focused tile is wrapped by the animated segment border and
// its glow halo; the chrome itself is handed in per frame by the owning
// screen, which owns the drivers.
type TileGrid struct {
	Cols  int
	Tiles []Tile

	Focused       int
	scrollY       float64
	targetScrollY float64
}

func NewTileGrid(cols int, tiles []Tile) *TileGrid {
	return &TileGrid{Cols: cols, Tiles: tiles}
}

// Update moves focus. Returns false when the move leaves the grid upward,
// signalling the parent to hand focus to the header bar.
func (tg *TileGrid) Update(dir Direction) bool {
	if len(tg.Tiles) == 0 {
		return true
	}
	row := tg.Focused / tg.Cols
	col := tg.Focused % tg.Cols

	switch dir {
	case DirLeft:
		if col > 0 {
			tg.Focused--
		}
	case DirRight:
		if col < tg.Cols-1 && tg.Focused+1 < len(tg.Tiles) {
			tg.Focused++
		}
	case DirUp:
		if row > 0 {
			tg.Focused -= tg.Cols
		} else {
			return false
		}
	case DirDown:
		if next := tg.Focused + tg.Cols; next < len(tg.Tiles) {
			tg.Focused = next
		}
	}
	return true
}

// wheelScrollStep is the scroll distance in pixels per wheel notch.
const wheelScrollStep = 48.0

// ScrollBy adjusts the scroll target by dy pixels, clamped to the grid's
// scrollable extent.
func (tg *TileGrid) ScrollBy(dy, gridBaseY, viewHeight float64) {
	rows := (len(tg.Tiles) + tg.Cols - 1) / tg.Cols
	max := gridBaseY + float64(rows)*TileRowHeight - viewHeight
	if max < 0 {
		max = 0
	}
	tg.targetScrollY += dy
	if tg.targetScrollY > max {
		tg.targetScrollY = max
	}
	if tg.targetScrollY < 0 {
		tg.targetScrollY = 0
	}
}

// EnsureVisible scrolls so the focused row is inside the viewport.
func (tg *TileGrid) EnsureVisible(gridBaseY, viewHeight float64) {
	row := float64(tg.Focused / tg.Cols)
	rowTop := gridBaseY + row*TileRowHeight
	rowBottom := rowTop + TileRowHeight

	if rowBottom > viewHeight+tg.targetScrollY {
		tg.targetScrollY = rowBottom - viewHeight
	}
	if rowTop-tg.targetScrollY < gridBaseY {
		tg.targetScrollY = rowTop - gridBaseY
		if tg.targetScrollY < 0 {
			tg.targetScrollY = 0
		}
	}
}

// TileRect returns the content rect of tile i at the current scroll position.
func (tg *TileGrid) TileRect(i int, baseX, baseY float64) Rect {
	col := i % tg.Cols
	row := i / tg.Cols
	return Rect{
		X: baseX + float64(col)*(TileWidth+TileGap),
		Y: baseY + float64(row)*TileRowHeight + TileFocusPad - tg.scrollY,
		W: TileWidth,
		H: TileHeight,
	}
}

// HitTest returns the index of the tile under (mx, my), or -1.
func (tg *TileGrid) HitTest(mx, my int, baseX, baseY float64) int {
	for i := range tg.Tiles {
		r := tg.TileRect(i, baseX, baseY)
		if PointInRect(mx, my, r.X, r.Y, r.W, r.H) {
			return i
		}
	}
	return -1
}

// Draw renders the grid. borderSegs and glowColor carry the focus chrome
// for this frame; iconColor is the shared icon-glow tint (one animation,
// all icons breathe together).
func (tg *TileGrid) Draw(dst *ebiten.Image, baseX, baseY float64, borderSegs []anim.Segment, glowColor, iconColor anim.HexColor) {
	tg.scrollY = Lerp(tg.scrollY, tg.targetScrollY, ScrollAnimSpeed)

	for i := range tg.Tiles {
		tile := &tg.Tiles[i]
		r := tg.TileRect(i, baseX, baseY)

		// Skip offscreen rows
		if r.Y+r.H < 0 || r.Y > float64(ScreenHeight) {
			continue
		}

		focused := i == tg.Focused

		// Chrome first: halo, then segments; the tile surface drawn after
		// covers the corner discs' inner bleed.
		if focused {
			DrawGlowHalo(dst, r, BorderThickness, glowColor)
			DrawSegmentBorder(dst, r, BorderThickness, borderSegs)
		}

		surface := ColorSurface
		if focused {
			surface = ColorSurfaceHover
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), surface, false)

		// Glyph icon with the breathing tint
		DrawTextCentered(dst, tile.Glyph, r.X+r.W/2, r.Y+r.H/2-6, FontSizeGlyph, iconColor.RGBA())

		// Label below the tile
		labelColor := ColorTextSecondary
		if focused {
			labelColor = ColorText
		}
		label := TruncateText(tile.Name, r.W, FontSizeSmall)
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H+14, FontSizeSmall, labelColor)
	}
}

// SelectedTile returns the focused tile, or nil for an empty grid.
func (tg *TileGrid) SelectedTile() *Tile {
	if len(tg.Tiles) == 0 || tg.Focused >= len(tg.Tiles) {
		return nil
	}
	return &tg.Tiles[tg.Focused]
}
