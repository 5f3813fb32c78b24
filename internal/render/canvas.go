// Package render defines the drawing surface the session paints on and the
// display-list plumbing that carries frames to a frontend.
package render

import (
	"image/color"

	"gridsnake/internal/core"
)

// Palette used by the screens.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Border     = color.RGBA{R: 255, A: 255}
	GridLine   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Head       = color.RGBA{G: 255, A: 255}
	Body       = color.RGBA{B: 255, A: 255}
	Food       = color.RGBA{A: 255}
	Ink        = color.RGBA{A: 255}
)

// TextStyle selects the face and color of rendered text.
type TextStyle struct {
	Bold  bool
	Color color.RGBA
}

// Texture is rasterized text ready to be placed. W and H are its pixel
// extent.
type Texture struct {
	Text  string
	Style TextStyle
	W, H  int
}

// Canvas is the drawing surface for one window.
type Canvas interface {
	Clear(c color.RGBA)
	DrawRect(r core.Rect, c color.RGBA, filled bool)
	// RenderText returns a reusable texture for text. Repeated calls with the
	// same arguments may return the same texture.
	RenderText(text string, style TextStyle) *Texture
	DrawTexture(t *Texture, x, y int)
	// Present flushes the drawn frame to the display.
	Present() error
}

// Measurer reports the pixel extent of text in a style.
type Measurer interface {
	Measure(text string, bold bool) (w, h int)
}
