package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Toast is a transient notice at the bottom of the screen, used for launch
// failures. Store one per screen, call Show to arm it and Draw each frame.
type Toast struct {
	message    string
	framesLeft int
}

const toastFrames = 240 // ~4 seconds at 60fps

// Show arms the toast with a message, replacing any current one.
func (t *Toast) Show(msg string) {
	t.message = msg
	t.framesLeft = toastFrames
}

// Draw renders and ages the toast.
func (t *Toast) Draw(dst *ebiten.Image) {
	if t.framesLeft <= 0 {
		return
	}
	t.framesLeft--

	tw, _ := MeasureText(t.message, FontSizeBody)
	w := tw + 48
	h := 44.0
	x := (float64(ScreenWidth) - w) / 2
	y := float64(ScreenHeight) - h - 40

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorOverlay, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, ColorError, false)
	DrawTextCentered(dst, t.message, x+w/2, y+h/2, FontSizeBody, ColorText)
}
