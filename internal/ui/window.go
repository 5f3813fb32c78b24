//go:build ebiten

// Package ui runs the game in a desktop window using ebiten.
package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"gridsnake/internal/config"
	"gridsnake/internal/event"
	"gridsnake/internal/frontend"
	"gridsnake/internal/render"
)

func init() {
	frontend.Register("window", New)
}

var keymap = map[ebiten.Key]event.Key{
	ebiten.KeyArrowUp:     event.KeyUp,
	ebiten.KeyArrowDown:   event.KeyDown,
	ebiten.KeyArrowLeft:   event.KeyLeft,
	ebiten.KeyArrowRight:  event.KeyRight,
	ebiten.KeyEnter:       event.KeyEnter,
	ebiten.KeyNumpadEnter: event.KeyEnter,
	ebiten.KeyEscape:      event.KeyEscape,
	ebiten.KeySpace:       event.KeySpace,
	ebiten.KeyH:           event.KeyH,
	ebiten.KeyJ:           event.KeyJ,
	ebiten.KeyK:           event.KeyK,
	ebiten.KeyL:           event.KeyL,
	ebiten.KeyQ:           event.KeyQ,
	ebiten.KeyG:           event.KeyG,
}

func translate(k ebiten.Key) event.Key {
	if ek, ok := keymap[k]; ok {
		return ek
	}
	return event.KeyOther
}

// Window adapts a session to the ebiten.Game interface.
type Window struct {
	cfg     *config.Config
	regular *text.GoTextFace
	bold    *text.GoTextFace
	pixel   *ebiten.Image

	queue  *event.Queue
	frames render.FrameBuffer
	done   <-chan error
	result error
	keys   []ebiten.Key
}

// New loads fonts and returns a window frontend.
func New(cfg *config.Config) (frontend.Frontend, error) {
	regSrc, err := loadFace(cfg.Font.Path, goregular.TTF)
	if err != nil {
		return nil, err
	}
	boldSrc, err := loadFace(cfg.Font.Path, gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Window{
		cfg:     cfg,
		regular: &text.GoTextFace{Source: regSrc, Size: cfg.Font.Size},
		bold:    &text.GoTextFace{Source: boldSrc, Size: cfg.Font.Size},
	}, nil
}

// loadFace reads the TTF at path, or uses fallback when path is empty.
func loadFace(path string, fallback []byte) (*text.GoTextFaceSource, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: reading font: %w", err)
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: parsing font: %w", err)
	}
	return src, nil
}

func (w *Window) Name() string { return "window" }

func (w *Window) face(bold bool) *text.GoTextFace {
	if bold {
		return w.bold
	}
	return w.regular
}

// Measure implements render.Measurer.
func (w *Window) Measure(s string, bold bool) (int, int) {
	tw, th := text.Measure(s, w.face(bold), 0)
	return int(tw + 0.5), int(th + 0.5)
}

func (w *Window) Run(ctx context.Context, q *event.Queue, play frontend.PlayFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.queue = q
	w.pixel = ebiten.NewImage(1, 1)
	w.pixel.Fill(color.White)

	canvas := render.NewRecorder(w.cfg.Window.Width, w.cfg.Window.Height, w, w.frames.Publish)
	w.done = frontend.Session(ctx, canvas, play)

	scale := w.cfg.Window.Scale
	ebiten.SetWindowTitle(w.cfg.Window.Title)
	ebiten.SetWindowSize(w.cfg.Window.Width*scale, w.cfg.Window.Height*scale)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	// The window can close before the session has drained the quit event.
	q.Push(event.Event{Kind: event.Quit})
	if w.result == nil {
		w.result = <-w.done
	}
	return w.result
}

// Update forwards key transitions and ends the game loop once the session
// has returned.
func (w *Window) Update() error {
	select {
	case err := <-w.done:
		w.result = err
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		w.queue.Push(event.Event{Kind: event.Quit})
	}
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.queue.Push(event.Down(translate(k)))
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.queue.Push(event.Up(translate(k)))
	}
	return nil
}

// Draw replays the newest frame.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.frames.Latest()
	if f == nil {
		return
	}
	for _, op := range f.Ops {
		switch op.Kind {
		case render.OpClear:
			screen.Fill(op.Color)
		case render.OpRect:
			if op.Filled {
				w.fill(screen, float64(op.Rect.X), float64(op.Rect.Y), float64(op.Rect.W), float64(op.Rect.H), op.Color)
				continue
			}
			x, y, rw, rh := float64(op.Rect.X), float64(op.Rect.Y), float64(op.Rect.W), float64(op.Rect.H)
			w.fill(screen, x, y, rw, 1, op.Color)
			w.fill(screen, x, y+rh-1, rw, 1, op.Color)
			w.fill(screen, x, y, 1, rh, op.Color)
			w.fill(screen, x+rw-1, y, 1, rh, op.Color)
		case render.OpText:
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(float64(op.Rect.X), float64(op.Rect.Y))
			opts.ColorScale.ScaleWithColor(op.Color)
			text.Draw(screen, op.Text, w.face(op.Bold), opts)
		}
	}
}

func (w *Window) fill(dst *ebiten.Image, x, y, width, height float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(w.pixel, op)
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Window.Width, w.cfg.Window.Height
}
