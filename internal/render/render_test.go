package render

import (
	"image/color"
	"testing"

	"gridsnake/internal/core"
)

func TestRecorderPublishesFrames(t *testing.T) {
	raster := NewRaster(100, 80)
	var got []*Frame
	rec := NewRecorder(100, 80, raster, func(f *Frame) { got = append(got, f) })

	rec.Clear(Background)
	rec.DrawRect(core.Rect{X: 10, Y: 10, W: 20, H: 20}, Head, true)
	tex := rec.RenderText("Score: 3", TextStyle{Color: Ink})
	rec.DrawTexture(tex, 0, 0)
	if err := rec.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("published %d frames, want 1", len(got))
	}
	f := got[0]
	if f.Seq != 1 || len(f.Ops) != 3 {
		t.Fatalf("frame seq=%d ops=%d", f.Seq, len(f.Ops))
	}
	if f.Ops[2].Kind != OpText || f.Ops[2].Text != "Score: 3" {
		t.Fatalf("text op = %+v", f.Ops[2])
	}

	rec.Clear(Background)
	rec.Present()
	if len(got) != 2 || len(got[1].Ops) != 1 || got[1].Seq != 2 {
		t.Fatal("second frame should start empty")
	}
	if len(got[0].Ops) != 3 {
		t.Fatal("first frame mutated after publish")
	}
}

func TestRenderTextCaches(t *testing.T) {
	rec := NewRecorder(10, 10, NewRaster(10, 10), nil)
	a := rec.RenderText("Exit", TextStyle{Bold: true, Color: Ink})
	b := rec.RenderText("Exit", TextStyle{Bold: true, Color: Ink})
	if a != b {
		t.Fatal("identical text should reuse the texture")
	}
	c := rec.RenderText("Exit", TextStyle{Color: Ink})
	if c == a || c.W >= a.W {
		t.Fatalf("bold width %d should exceed regular width %d", a.W, c.W)
	}
	if a.W <= 0 || a.H <= 0 {
		t.Fatalf("texture size %dx%d", a.W, a.H)
	}
}

func TestRasterPaint(t *testing.T) {
	raster := NewRaster(60, 60)
	rec := NewRecorder(60, 60, raster, func(f *Frame) { raster.Paint(f) })
	rec.Clear(Background)
	rec.DrawRect(core.Rect{X: 10, Y: 10, W: 10, H: 10}, Body, true)
	rec.DrawRect(core.Rect{X: 30, Y: 30, W: 10, H: 10}, Border, false)
	rec.Present()

	img := raster.Image()
	check := func(x, y int, want color.RGBA) {
		t.Helper()
		if got := img.RGBAAt(x, y); got != want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	check(0, 0, Background)
	check(15, 15, Body)
	check(30, 30, Border)
	check(39, 35, Border)
	check(35, 35, Background)
}

func TestFrameBuffer(t *testing.T) {
	var fb FrameBuffer
	if fb.Latest() != nil {
		t.Fatal("empty buffer should return nil")
	}
	f := &Frame{Seq: 4}
	fb.Publish(f)
	if fb.Latest() != f {
		t.Fatal("Latest did not return the published frame")
	}
}
