package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrEmptyGrid reports pixel dimensions too small to hold one cell.
	ErrEmptyGrid = errors.New("grid has no cells")
)

// Rect is an axis-aligned rectangle in device pixels.
type Rect struct {
	X, Y, W, H int
}

// Coordinate addresses one grid cell.
type Coordinate struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Grid is the playable cell space and its pixel layout. It is immutable after
// BuildGrid returns.
type Grid struct {
	HCells int
	VCells int
	// Area is the pixel rectangle covering every cell.
	Area  Rect
	cell  int
	rects []Rect
}

// BuildGrid lays out as many square cells as fit inside the window after a
// spacing margin on every side. Cell rectangles are precomputed in row-major
// order.
func BuildGrid(widthPx, heightPx, spacingPx, cellPx int) (*Grid, error) {
	if cellPx <= 0 {
		return nil, fmt.Errorf("build grid: cell size %d: %w", cellPx, ErrEmptyGrid)
	}
	h := (widthPx - 2*spacingPx) / cellPx
	v := (heightPx - 2*spacingPx) / cellPx
	if h <= 0 || v <= 0 {
		return nil, fmt.Errorf("build grid: %dx%d px with %d px margin: %w", widthPx, heightPx, spacingPx, ErrEmptyGrid)
	}
	g := &Grid{
		HCells: h,
		VCells: v,
		Area:   Rect{X: spacingPx, Y: spacingPx, W: widthPx - 2*spacingPx, H: heightPx - 2*spacingPx},
		cell:   cellPx,
		rects:  make([]Rect, 0, h*v),
	}
	for y := 0; y < v; y++ {
		for x := 0; x < h; x++ {
			g.rects = append(g.rects, Rect{X: spacingPx + x*cellPx, Y: spacingPx + y*cellPx, W: cellPx, H: cellPx})
		}
	}
	return g, nil
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Size { return Size{W: g.HCells, H: g.VCells} }

// CellSize returns the edge length of one cell in pixels.
func (g *Grid) CellSize() int { return g.cell }

// Contains reports whether c lies within [0, HCells) x [0, VCells).
func (g *Grid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.HCells && c.Y < g.VCells
}

// Index returns the row-major index of c. The caller must check Contains.
func (g *Grid) Index(c Coordinate) int { return c.Y*g.HCells + c.X }

// CellRect returns the pixel rectangle of c.
func (g *Grid) CellRect(c Coordinate) (Rect, error) {
	if !g.Contains(c) {
		return Rect{}, fmt.Errorf("cell %v on %dx%d grid: %w", c, g.HCells, g.VCells, ErrOutOfBounds)
	}
	return g.rects[g.Index(c)], nil
}

// Cells returns every cell rectangle in row-major order. The slice must not be
// modified.
func (g *Grid) Cells() []Rect { return g.rects }

// Neighbor returns the cell one step from c along d and whether it is inside
// the grid.
func (g *Grid) Neighbor(c Coordinate, d Direction) (Coordinate, bool) {
	dx, dy := d.Delta()
	n := c.Add(dx, dy)
	return n, g.Contains(n)
}

// Center returns the middle cell, rounding down.
func (g *Grid) Center() Coordinate {
	return Coordinate{X: g.HCells / 2, Y: g.VCells / 2}
}
