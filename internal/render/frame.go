package render

import (
	"image/color"
	"sync/atomic"

	"gridsnake/internal/core"
)

// OpKind tags a display-list entry.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpRect
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Rect   core.Rect
	Color  color.RGBA
	Filled bool
	Text   string
	Bold   bool
}

// Frame is a complete recorded picture.
type Frame struct {
	Seq    uint64
	Width  int
	Height int
	Ops    []Op
}

// Recorder is a Canvas that records draw calls into Frames and hands each
// presented Frame to publish.
type Recorder struct {
	width, height int
	measure       Measurer
	publish       func(*Frame)

	cur   *Frame
	seq   uint64
	cache map[textKey]*Texture
}

type textKey struct {
	text  string
	style TextStyle
}

// NewRecorder returns a Recorder for a width x height window.
func NewRecorder(width, height int, m Measurer, publish func(*Frame)) *Recorder {
	r := &Recorder{
		width:   width,
		height:  height,
		measure: m,
		publish: publish,
		cache:   make(map[textKey]*Texture),
	}
	r.reset()
	return r
}

func (r *Recorder) reset() {
	r.cur = &Frame{Width: r.width, Height: r.height}
}

func (r *Recorder) Clear(c color.RGBA) {
	r.cur.Ops = append(r.cur.Ops[:0], Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawRect(rect core.Rect, c color.RGBA, filled bool) {
	r.cur.Ops = append(r.cur.Ops, Op{Kind: OpRect, Rect: rect, Color: c, Filled: filled})
}

func (r *Recorder) RenderText(text string, style TextStyle) *Texture {
	k := textKey{text: text, style: style}
	if t, ok := r.cache[k]; ok {
		return t
	}
	w, h := r.measure.Measure(text, style.Bold)
	t := &Texture{Text: text, Style: style, W: w, H: h}
	r.cache[k] = t
	return t
}

func (r *Recorder) DrawTexture(t *Texture, x, y int) {
	r.cur.Ops = append(r.cur.Ops, Op{
		Kind:  OpText,
		Rect:  core.Rect{X: x, Y: y, W: t.W, H: t.H},
		Color: t.Style.Color,
		Text:  t.Text,
		Bold:  t.Style.Bold,
	})
}

// Present publishes the current frame and starts a new one.
func (r *Recorder) Present() error {
	r.seq++
	r.cur.Seq = r.seq
	if r.publish != nil {
		r.publish(r.cur)
	}
	r.reset()
	return nil
}

// FrameBuffer hands the newest Frame from the session goroutine to a render
// loop.
type FrameBuffer struct {
	latest atomic.Pointer[Frame]
}

// Publish stores f as the newest frame.
func (b *FrameBuffer) Publish(f *Frame) { b.latest.Store(f) }

// Latest returns the newest frame, or nil before the first Present.
func (b *FrameBuffer) Latest() *Frame { return b.latest.Load() }
