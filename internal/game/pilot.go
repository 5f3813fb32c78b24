package game

import "gridsnake/internal/core"

// Wanderer steers a round without a player. It never reverses, avoids cells
// that would end the round on the next tick when it can, and prefers moves
// that close the distance to food.
type Wanderer struct {
	rng Intn
}

// NewWanderer returns a pilot drawing tie-breaks from rng.
func NewWanderer(rng Intn) *Wanderer { return &Wanderer{rng: rng} }

// Steer picks a heading for the next tick and applies it to r.
func (w *Wanderer) Steer(r *Round) core.Direction {
	s := r.Snake()
	cur := s.Direction()
	best := -1
	var picks []core.Direction
	for _, d := range []core.Direction{core.Left, core.Right, core.Up, core.Down} {
		if d == cur.Opposite() {
			continue
		}
		next, ok := r.Grid().Neighbor(s.Head(), d)
		if !ok || w.blocked(s, next, next == r.Food()) {
			continue
		}
		score := 2*(r.Grid().HCells+r.Grid().VCells) - manhattan(next, r.Food())
		switch {
		case score > best:
			best = score
			picks = append(picks[:0], d)
		case score == best:
			picks = append(picks, d)
		}
	}
	if len(picks) == 0 {
		return cur
	}
	d := picks[w.rng.IntN(len(picks))]
	r.Turn(d)
	return r.Snake().Direction()
}

// blocked reports whether moving into c bites the body. The tail cell is free
// unless the move eats, since the tail stays put on growth.
func (w *Wanderer) blocked(s *Snake, c core.Coordinate, eats bool) bool {
	body := s.Body()
	if !eats {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}

func manhattan(a, b core.Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
