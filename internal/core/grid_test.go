package core

import (
	"errors"
	"testing"
)

func TestBuildGridDefaultWindow(t *testing.T) {
	g, err := BuildGrid(800, 600, 20, 20)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if g.HCells != 38 || g.VCells != 28 {
		t.Fatalf("got %dx%d cells, want 38x28", g.HCells, g.VCells)
	}
	if g.CellSize() != 20 {
		t.Fatalf("cell size = %d", g.CellSize())
	}
	if len(g.Cells()) != 38*28 {
		t.Fatalf("got %d rects, want %d", len(g.Cells()), 38*28)
	}
	r, err := g.CellRect(Coordinate{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("CellRect origin: %v", err)
	}
	if r != (Rect{X: 20, Y: 20, W: 20, H: 20}) {
		t.Fatalf("origin rect = %+v", r)
	}
	r, _ = g.CellRect(Coordinate{X: 37, Y: 27})
	if r != (Rect{X: 760, Y: 560, W: 20, H: 20}) {
		t.Fatalf("last rect = %+v", r)
	}
}

func TestBuildGridRowMajor(t *testing.T) {
	g, err := BuildGrid(100, 80, 10, 20)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	for y := 0; y < g.VCells; y++ {
		for x := 0; x < g.HCells; x++ {
			want := Rect{X: 10 + x*20, Y: 10 + y*20, W: 20, H: 20}
			if got := g.Cells()[y*g.HCells+x]; got != want {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestBuildGridRejectsEmpty(t *testing.T) {
	cases := []struct {
		name                      string
		width, height, space, cel int
	}{
		{"narrow", 50, 600, 20, 20},
		{"short", 800, 40, 20, 20},
		{"zero cell", 800, 600, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildGrid(tc.width, tc.height, tc.space, tc.cel)
			if !errors.Is(err, ErrEmptyGrid) {
				t.Fatalf("err = %v, want ErrEmptyGrid", err)
			}
		})
	}
}

func TestCellRectBoundary(t *testing.T) {
	g, _ := BuildGrid(800, 600, 20, 20)
	for _, c := range []Coordinate{
		{X: g.HCells, Y: 0},
		{X: 0, Y: g.VCells},
		{X: -1, Y: 3},
		{X: 2, Y: -1},
	} {
		if _, err := g.CellRect(c); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CellRect(%v) err = %v, want ErrOutOfBounds", c, err)
		}
	}
	if _, err := g.CellRect(Coordinate{X: g.HCells - 1, Y: g.VCells - 1}); err != nil {
		t.Fatalf("last cell rejected: %v", err)
	}
}

func TestNeighbor(t *testing.T) {
	g, _ := BuildGrid(100, 100, 0, 20)
	if n, ok := g.Neighbor(Coordinate{X: 4, Y: 2}, Right); ok || n.X != 5 {
		t.Fatalf("Neighbor right of last column = %v,%v", n, ok)
	}
	if n, ok := g.Neighbor(Coordinate{X: 0, Y: 0}, Up); ok || n.Y != -1 {
		t.Fatalf("Neighbor above origin = %v,%v", n, ok)
	}
	if n, ok := g.Neighbor(Coordinate{X: 2, Y: 2}, Down); !ok || n != (Coordinate{X: 2, Y: 3}) {
		t.Fatalf("Neighbor down = %v,%v", n, ok)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Left, Right, Up, Down} {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v opposite is not an involution", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Fatalf("%v and its opposite do not cancel", d)
		}
	}
}

func TestPacer(t *testing.T) {
	p := NewPacer(0, 0)
	if p.Interval() != DefaultNormalInterval {
		t.Fatalf("default interval = %v", p.Interval())
	}
	if !p.SetFast(true) {
		t.Fatal("SetFast(true) should report a change")
	}
	if !p.Fast() || p.Interval() != DefaultFastInterval {
		t.Fatalf("fast = %v, interval = %v", p.Fast(), p.Interval())
	}
	if p.SetFast(true) {
		t.Fatal("repeated SetFast(true) should not report a change")
	}
	p.SetFast(false)
	if p.Fast() || p.Interval() != DefaultNormalInterval {
		t.Fatalf("interval after release = %v", p.Interval())
	}
}
