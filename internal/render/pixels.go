package render

import (
	"image"
	"image/color"

	"gridsnake/internal/core"
)

// fillRectRGBA paints r into img, clipped to the image bounds.
func fillRectRGBA(img *image.RGBA, r core.Rect, c color.RGBA) {
	b := img.Bounds().Intersect(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		base := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[base+0] = c.R
			img.Pix[base+1] = c.G
			img.Pix[base+2] = c.B
			img.Pix[base+3] = c.A
			base += 4
		}
	}
}

// strokeRectRGBA paints the one-pixel outline of r.
func strokeRectRGBA(img *image.RGBA, r core.Rect, c color.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	fillRectRGBA(img, core.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	fillRectRGBA(img, core.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	fillRectRGBA(img, core.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	fillRectRGBA(img, core.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// clearRGBA fills the whole image with c.
func clearRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}
