package ui

import "image/color"

// Colors: dark neon theme
var (
	ColorBackground    = color.RGBA{R: 0x0e, G: 0x0e, B: 0x13, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1c, G: 0x1c, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xa4, B: 0xdc, A: 0xFF}
	ColorText          = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9c, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6c, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xFF}
)

// Layout constants
const (
	TileWidth    = 260
	TileHeight   = 200
	TileGap      = 36
	TileFocusPad = 10

	BorderThickness = 4.0
	GlowLayers      = 4
	GlowSpread      = 6.0

	HeaderHeight  = 64
	HeaderPadding = 40

	SectionPadding = 48

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeGlyph   = 64

	ScrollAnimSpeed = 0.12

	ScreenWidth  = 1920
	ScreenHeight = 1080

	// TileRowHeight is one grid row: tile, label and focus padding.
	TileRowHeight = TileHeight + FontSizeSmall + 20 + TileFocusPad*2 + TileGap
)
