package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster replays Frames into an in-memory RGBA image using the basic bitmap
// font. It backs headless snapshots and tests.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster allocates a width x height image.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Measure implements Measurer. Bold text is drawn twice with a one pixel
// offset, so it is one pixel wider.
func (r *Raster) Measure(text string, bold bool) (int, int) {
	w := font.MeasureString(r.face, text).Ceil()
	if bold && w > 0 {
		w++
	}
	return w, r.face.Metrics().Height.Ceil()
}

// Paint replays f onto the image.
func (r *Raster) Paint(f *Frame) *image.RGBA {
	if f == nil {
		return r.img
	}
	for _, op := range f.Ops {
		switch op.Kind {
		case OpClear:
			clearRGBA(r.img, op.Color)
		case OpRect:
			if op.Filled {
				fillRectRGBA(r.img, op.Rect, op.Color)
			} else {
				strokeRectRGBA(r.img, op.Rect, op.Color)
			}
		case OpText:
			r.drawText(op)
		}
	}
	return r.img
}

func (r *Raster) drawText(op Op) {
	ascent := r.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(op.Color),
		Face: r.face,
		Dot:  fixed.P(op.Rect.X, op.Rect.Y+ascent),
	}
	d.DrawString(op.Text)
	if op.Bold {
		d.Dot = fixed.P(op.Rect.X+1, op.Rect.Y+ascent)
		d.DrawString(op.Text)
	}
}
