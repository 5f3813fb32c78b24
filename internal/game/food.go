package game

import (
	"fmt"

	"gridsnake/internal/core"
)

// Intn draws uniform integers in [0, n). *core.RNG from pkg/core satisfies it.
type Intn interface {
	IntN(n int) int
}

// Occupancy reports cells that already hold something.
type Occupancy interface {
	Contains(c core.Coordinate) bool
}

// Policy selects how food placement treats occupied cells.
type Policy uint8

const (
	// PolicyOverlap draws x and y independently and accepts any cell.
	PolicyOverlap Policy = iota
	// PolicyReroll draws uniformly among free cells.
	PolicyReroll
)

// ParsePolicy maps a config name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "overlap":
		return PolicyOverlap, nil
	case "reroll":
		return PolicyReroll, nil
	}
	return 0, fmt.Errorf("unknown food policy %q", name)
}

func (p Policy) String() string {
	if p == PolicyReroll {
		return "reroll"
	}
	return "overlap"
}

// Spawner places food.
type Spawner struct {
	rng    Intn
	policy Policy
}

// NewSpawner returns a Spawner drawing from rng.
func NewSpawner(rng Intn, policy Policy) *Spawner {
	return &Spawner{rng: rng, policy: policy}
}

// Policy returns the placement policy.
func (s *Spawner) Policy() Policy { return s.policy }

// Respawn returns a new food cell on g. occupied may be nil.
func (s *Spawner) Respawn(g *core.Grid, occupied Occupancy) core.Coordinate {
	if s.policy == PolicyReroll && occupied != nil {
		if c, ok := s.pickFree(g, occupied); ok {
			return c
		}
	}
	x := s.rng.IntN(g.HCells)
	y := s.rng.IntN(g.VCells)
	return core.Coordinate{X: x, Y: y}
}

func (s *Spawner) pickFree(g *core.Grid, occupied Occupancy) (core.Coordinate, bool) {
	free := 0
	for y := 0; y < g.VCells; y++ {
		for x := 0; x < g.HCells; x++ {
			if !occupied.Contains(core.Coordinate{X: x, Y: y}) {
				free++
			}
		}
	}
	if free == 0 {
		return core.Coordinate{}, false
	}
	k := s.rng.IntN(free)
	for y := 0; y < g.VCells; y++ {
		for x := 0; x < g.HCells; x++ {
			c := core.Coordinate{X: x, Y: y}
			if occupied.Contains(c) {
				continue
			}
			if k == 0 {
				return c, true
			}
			k--
		}
	}
	return core.Coordinate{}, false
}
