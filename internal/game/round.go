package game

import (
	"errors"
	"fmt"

	"gridsnake/internal/core"
)

// ErrGridTooSmall reports a grid that cannot hold the starting snake.
var ErrGridTooSmall = errors.New("grid too small for starting snake")

// DefaultLength is the starting body length.
const DefaultLength = 5

// Cause explains why a round ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	// CauseAbandoned marks a round the player gave up on.
	CauseAbandoned
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseAbandoned:
		return "abandoned"
	}
	return "none"
}

// Outcome is the result of one Advance.
type Outcome struct {
	Ate   bool
	Cause Cause
}

// Lost reports whether the round ended on this tick.
func (o Outcome) Lost() bool { return o.Cause != CauseNone }

// Summary describes a finished or running round.
type Summary struct {
	Score  int
	Length int
	Ticks  int
	Cause  Cause
}

// Round is one play-through from spawn to collision.
type Round struct {
	grid    *core.Grid
	spawner *Spawner
	snake   *Snake
	food    core.Coordinate
	score   int
	ticks   int
	ended   Cause
}

// Fits reports whether a starting snake of length cells fits on g when
// placed at the center heading right.
func Fits(g *core.Grid, length int) error {
	if length < 1 {
		return fmt.Errorf("length %d: %w", length, ErrGridTooSmall)
	}
	if g.Center().X-(length-1) < 0 {
		return fmt.Errorf("%d cells across, need %d: %w", g.HCells, 2*(length-1), ErrGridTooSmall)
	}
	return nil
}

// NewRound places a snake of the given length at the grid center heading
// right and draws the first food cell.
func NewRound(g *core.Grid, spawner *Spawner, length int) (*Round, error) {
	if err := Fits(g, length); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	center := g.Center()
	r := &Round{
		grid:    g,
		spawner: spawner,
		snake:   NewSnake(center, length, core.Right),
	}
	r.food = spawner.Respawn(g, r.snake)
	return r, nil
}

// Grid returns the grid the round plays on.
func (r *Round) Grid() *core.Grid { return r.grid }

// Snake returns the live snake.
func (r *Round) Snake() *Snake { return r.snake }

// Food returns the current food cell.
func (r *Round) Food() core.Coordinate { return r.food }

// Score returns the food eaten so far.
func (r *Round) Score() int { return r.score }

// Ticks returns the number of completed advances.
func (r *Round) Ticks() int { return r.ticks }

// Ended returns the losing cause, or CauseNone while the round is live.
func (r *Round) Ended() Cause { return r.ended }

// Turn forwards a heading request to the snake.
func (r *Round) Turn(d core.Direction) bool {
	if r.ended != CauseNone {
		return false
	}
	return r.snake.Turn(d)
}

// Abandon ends a live round without a collision.
func (r *Round) Abandon() {
	if r.ended == CauseNone {
		r.ended = CauseAbandoned
	}
}

// Summary snapshots the round.
func (r *Round) Summary() Summary {
	return Summary{Score: r.score, Length: r.snake.Len(), Ticks: r.ticks, Cause: r.ended}
}

// Advance runs one simulation tick. Collisions are checked wall first, then
// food is resolved, then the post-move body is scanned for a self hit. Once a
// round has ended Advance keeps returning the same cause without mutating.
func (r *Round) Advance() Outcome {
	if r.ended != CauseNone {
		return Outcome{Cause: r.ended}
	}
	head, ok := r.grid.Neighbor(r.snake.Head(), r.snake.Direction())
	if !ok {
		r.ended = CauseWall
		return Outcome{Cause: CauseWall}
	}

	ate := head == r.food
	if ate {
		r.score++
	}
	r.snake.step(head, ate)
	if ate {
		r.food = r.spawner.Respawn(r.grid, r.snake)
	}
	r.ticks++

	if r.snake.bitesSelf() {
		r.ended = CauseSelf
		return Outcome{Ate: ate, Cause: CauseSelf}
	}
	return Outcome{Ate: ate}
}
