//go:build raylib

// Package raywin runs the game in a raylib window.
package raywin

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/internal/config"
	"gridsnake/internal/event"
	"gridsnake/internal/frontend"
	"gridsnake/internal/render"
)

func init() {
	frontend.Register("raylib", New)
}

var keymap = map[int32]event.Key{
	rl.KeyUp:      event.KeyUp,
	rl.KeyDown:    event.KeyDown,
	rl.KeyLeft:    event.KeyLeft,
	rl.KeyRight:   event.KeyRight,
	rl.KeyEnter:   event.KeyEnter,
	rl.KeyKpEnter: event.KeyEnter,
	rl.KeyEscape:  event.KeyEscape,
	rl.KeySpace:   event.KeySpace,
	rl.KeyH:       event.KeyH,
	rl.KeyJ:       event.KeyJ,
	rl.KeyK:       event.KeyK,
	rl.KeyL:       event.KeyL,
	rl.KeyQ:       event.KeyQ,
	rl.KeyG:       event.KeyG,
}

// Window is the raylib frontend.
type Window struct {
	cfg      *config.Config
	fontSize int32
	frames   render.FrameBuffer
	main     *mainThread
}

// New returns a raylib frontend.
func New(cfg *config.Config) (frontend.Frontend, error) {
	return &Window{cfg: cfg, fontSize: int32(cfg.Font.Size), main: newMainThread()}, nil
}

func (w *Window) Name() string { return "raylib" }

// Measure implements render.Measurer. raylib calls must stay on the window
// goroutine, so the request is answered by the Run loop.
func (w *Window) Measure(s string, bold bool) (int, int) {
	return w.main.measure(s, bold)
}

func (w *Window) measureText(s string, bold bool) (int, int) {
	tw := int(rl.MeasureText(s, w.fontSize))
	if bold && tw > 0 {
		tw++
	}
	return tw, int(w.fontSize)
}

func (w *Window) Run(ctx context.Context, q *event.Queue, play frontend.PlayFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rl.InitWindow(int32(w.cfg.Window.Width), int32(w.cfg.Window.Height), w.cfg.Window.Title)
	defer rl.CloseWindow()
	defer w.main.close()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	canvas := render.NewRecorder(w.cfg.Window.Width, w.cfg.Window.Height, w, w.frames.Publish)
	done := frontend.Session(ctx, canvas, play)

	for {
		select {
		case err := <-done:
			return err
		default:
		}
		if rl.WindowShouldClose() {
			q.Push(event.Event{Kind: event.Quit})
		}
		w.pollKeys(q)
		w.main.serve(w.measureText)
		rl.BeginDrawing()
		w.draw(w.frames.Latest())
		rl.EndDrawing()
	}
}

func (w *Window) pollKeys(q *event.Queue) {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		key, ok := keymap[k]
		if !ok {
			key = event.KeyOther
		}
		q.Push(event.Down(key))
	}
	for k, key := range keymap {
		if rl.IsKeyReleased(k) {
			q.Push(event.Up(key))
		}
	}
}

func (w *Window) draw(f *render.Frame) {
	if f == nil {
		return
	}
	for _, op := range f.Ops {
		r := op.Rect
		switch op.Kind {
		case render.OpClear:
			rl.ClearBackground(op.Color)
		case render.OpRect:
			if op.Filled {
				rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), op.Color)
			} else {
				rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), op.Color)
			}
		case render.OpText:
			rl.DrawText(op.Text, int32(r.X), int32(r.Y), w.fontSize, op.Color)
			if op.Bold {
				rl.DrawText(op.Text, int32(r.X)+1, int32(r.Y), w.fontSize, op.Color)
			}
		}
	}
}
