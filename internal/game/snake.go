package game

import (
	"slices"

	"gridsnake/internal/core"
)

// Snake is an ordered body of cells, head first, plus its heading.
type Snake struct {
	body []core.Coordinate
	dir  core.Direction
	// moved is the heading used by the most recent advance.
	moved core.Direction
}

// NewSnake lays out length cells in a straight line ending at head, trailing
// away from dir.
func NewSnake(head core.Coordinate, length int, dir core.Direction) *Snake {
	dx, dy := dir.Opposite().Delta()
	body := make([]core.Coordinate, length)
	for i := range body {
		body[i] = head.Add(i*dx, i*dy)
	}
	return &Snake{body: body, dir: dir, moved: dir}
}

// Head returns the first body cell.
func (s *Snake) Head() core.Coordinate { return s.body[0] }

// Tail returns the last body cell.
func (s *Snake) Tail() core.Coordinate { return s.body[len(s.body)-1] }

// Body returns the cells head first. The slice must not be modified.
func (s *Snake) Body() []core.Coordinate { return s.body }

// Len returns the number of body cells.
func (s *Snake) Len() int { return len(s.body) }

// Direction returns the heading the next advance will use.
func (s *Snake) Direction() core.Direction { return s.dir }

// Contains reports whether any body cell equals c.
func (s *Snake) Contains(c core.Coordinate) bool {
	return slices.Contains(s.body, c)
}

// Turn requests a new heading. A reversal of the current heading, or of the
// heading of the last completed move, is rejected and reported as false.
func (s *Snake) Turn(d core.Direction) bool {
	if d == s.dir.Opposite() || d == s.moved.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// step prepends head and drops the tail unless grow is set.
func (s *Snake) step(head core.Coordinate, grow bool) {
	if !grow {
		s.body = s.body[:len(s.body)-1]
	}
	s.body = slices.Insert(s.body, 0, head)
	s.moved = s.dir
}

// bitesSelf reports whether the head overlaps any other body cell.
func (s *Snake) bitesSelf() bool {
	return slices.Contains(s.body[1:], s.body[0])
}
