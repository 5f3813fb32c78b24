// Package term runs the game in a terminal. One grid cell maps to two
// columns by one row, so pixel coordinates from the canvas are divided by
// the configured cell size.
package term

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"gridsnake/internal/config"
	"gridsnake/internal/event"
	"gridsnake/internal/frontend"
	"gridsnake/internal/render"
)

// releaseDelay is how long Enter must go without a repeat before a release
// is synthesized. Terminals report presses only.
const releaseDelay = 500 * time.Millisecond

func init() {
	frontend.Register("term", New)
}

// Terminal is the tcell frontend.
type Terminal struct {
	cfg    *config.Config
	cell   int
	screen tcell.Screen
	frames render.FrameBuffer

	mu      sync.Mutex
	release *time.Timer
}

// New returns a terminal frontend.
func New(cfg *config.Config) (frontend.Frontend, error) {
	if cfg.Window.Cell <= 0 {
		return nil, fmt.Errorf("term: cell size %d must be positive", cfg.Window.Cell)
	}
	return &Terminal{cfg: cfg, cell: cfg.Window.Cell}, nil
}

func (t *Terminal) Name() string { return "term" }

// Measure implements render.Measurer in pixel units.
func (t *Terminal) Measure(text string, bold bool) (int, int) {
	return runewidth.StringWidth(text) * t.cell / 2, t.cell
}

func (t *Terminal) Run(ctx context.Context, q *event.Queue, play frontend.PlayFunc) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	t.screen = screen
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	canvas := render.NewRecorder(t.cfg.Window.Width, t.cfg.Window.Height, t, t.publish)
	done := frontend.Session(ctx, canvas, play)

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	for {
		select {
		case err := <-done:
			t.stopRelease()
			return err
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				t.key(ev, q)
			case *tcell.EventResize:
				screen.Sync()
				t.paint(t.frames.Latest())
			}
		}
	}
}

func (t *Terminal) key(ev *tcell.EventKey, q *event.Queue) {
	out, ok := translate(ev)
	if !ok {
		return
	}
	if out.Key == event.KeyEnter && out.Kind == event.Press {
		t.holdEnter(q)
	}
	q.Push(out)
}

// holdEnter (re)arms the synthetic Enter release.
func (t *Terminal) holdEnter(q *event.Queue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.release != nil {
		t.release.Stop()
	}
	t.release = time.AfterFunc(releaseDelay, func() {
		q.Push(event.Up(event.KeyEnter))
	})
}

func (t *Terminal) stopRelease() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.release != nil {
		t.release.Stop()
	}
}

// translate maps a tcell key to a game event.
func translate(ev *tcell.EventKey) (event.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return event.Event{Kind: event.Quit}, true
	case tcell.KeyUp:
		return event.Down(event.KeyUp), true
	case tcell.KeyDown:
		return event.Down(event.KeyDown), true
	case tcell.KeyLeft:
		return event.Down(event.KeyLeft), true
	case tcell.KeyRight:
		return event.Down(event.KeyRight), true
	case tcell.KeyEnter:
		return event.Down(event.KeyEnter), true
	case tcell.KeyEscape:
		return event.Down(event.KeyEscape), true
	case tcell.KeyRune:
		return event.Down(runeKey(ev.Rune())), true
	}
	return event.Down(event.KeyOther), true
}

func runeKey(r rune) event.Key {
	switch r {
	case ' ':
		return event.KeySpace
	case 'h':
		return event.KeyH
	case 'j':
		return event.KeyJ
	case 'k':
		return event.KeyK
	case 'l':
		return event.KeyL
	case 'q':
		return event.KeyQ
	case 'g':
		return event.KeyG
	}
	return event.KeyOther
}

func (t *Terminal) publish(f *render.Frame) {
	t.frames.Publish(f)
	t.paint(f)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// span converts a pixel range to a terminal cell range along one axis.
func span(pos, size, unit int) (int, int) {
	lo := pos / unit
	hi := (pos + size) / unit
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (t *Terminal) paint(f *render.Frame) {
	if f == nil || t.screen == nil {
		return
	}
	s := t.screen
	colUnit := t.cell / 2
	if colUnit == 0 {
		colUnit = 1
	}
	var bg tcell.Color
	for _, op := range f.Ops {
		switch op.Kind {
		case render.OpClear:
			bg = tcellColor(op.Color)
			s.Fill(' ', tcell.StyleDefault.Background(bg))
		case render.OpRect:
			x0, x1 := span(op.Rect.X, op.Rect.W, colUnit)
			y0, y1 := span(op.Rect.Y, op.Rect.H, t.cell)
			if op.Filled {
				st := tcell.StyleDefault.Background(tcellColor(op.Color))
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						s.SetContent(x, y, ' ', nil, st)
					}
				}
				continue
			}
			st := tcell.StyleDefault.Background(bg).Foreground(tcellColor(op.Color))
			if y1-y0 <= 1 {
				s.SetContent(x0, y0, '·', nil, st)
				continue
			}
			box(s, x0, y0, x1-1, y1-1, st)
		case render.OpText:
			st := tcell.StyleDefault.Background(bg).Foreground(tcellColor(op.Color)).Bold(op.Bold)
			x := op.Rect.X / colUnit
			y := op.Rect.Y / t.cell
			for _, r := range op.Text {
				s.SetContent(x, y, r, nil, st)
				x += runewidth.RuneWidth(r)
			}
		}
	}
	s.Show()
}

func box(s tcell.Screen, x0, y0, x1, y1 int, st tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, st)
		s.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, st)
		s.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)
}
