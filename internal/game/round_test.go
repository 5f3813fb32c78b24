package game

import (
	"errors"
	"slices"
	"testing"

	"gridsnake/internal/core"
	pcore "gridsnake/pkg/core"
)

// seq replays a fixed list of draws, reduced modulo n.
type seq struct {
	vals []int
	i    int
}

func (s *seq) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func defaultGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.BuildGrid(800, 600, 20, 20)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	return g
}

func newRound(t *testing.T, g *core.Grid, draws ...int) *Round {
	t.Helper()
	r, err := NewRound(g, NewSpawner(&seq{vals: draws}, PolicyOverlap), DefaultLength)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

func TestNewRoundLayout(t *testing.T) {
	r := newRound(t, defaultGrid(t), 0, 0)
	want := []core.Coordinate{{X: 19, Y: 14}, {X: 18, Y: 14}, {X: 17, Y: 14}, {X: 16, Y: 14}, {X: 15, Y: 14}}
	if !slices.Equal(r.Snake().Body(), want) {
		t.Fatalf("body = %v, want %v", r.Snake().Body(), want)
	}
	if r.Snake().Direction() != core.Right {
		t.Fatalf("heading = %v, want right", r.Snake().Direction())
	}
	if r.Score() != 0 {
		t.Fatalf("score = %d", r.Score())
	}
}

func TestFirstTickMovesRight(t *testing.T) {
	r := newRound(t, defaultGrid(t), 0, 0)
	out := r.Advance()
	if out.Lost() || out.Ate {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if r.Snake().Head() != (core.Coordinate{X: 20, Y: 14}) {
		t.Fatalf("head = %v", r.Snake().Head())
	}
	if r.Snake().Tail() != (core.Coordinate{X: 16, Y: 14}) {
		t.Fatalf("tail = %v", r.Snake().Tail())
	}
	if r.Snake().Len() != 5 {
		t.Fatalf("len = %d", r.Snake().Len())
	}
}

func TestWallCollision(t *testing.T) {
	g := defaultGrid(t)
	r := newRound(t, g, 0, 0)
	for r.Snake().Head().X < g.HCells-1 {
		if out := r.Advance(); out.Lost() {
			t.Fatalf("lost early at %v", r.Snake().Head())
		}
	}
	before := slices.Clone(r.Snake().Body())
	out := r.Advance()
	if out.Cause != CauseWall {
		t.Fatalf("cause = %v, want wall", out.Cause)
	}
	if r.Score() != 0 {
		t.Fatalf("score changed to %d", r.Score())
	}
	if !slices.Equal(before, r.Snake().Body()) {
		t.Fatal("wall tick mutated the body")
	}
	if again := r.Advance(); again.Cause != CauseWall || !slices.Equal(before, r.Snake().Body()) {
		t.Fatal("advance after loss must be inert")
	}
}

func TestEatingGrowsAndRespawns(t *testing.T) {
	r := newRound(t, defaultGrid(t), 20, 14, 3, 7)
	if r.Food() != (core.Coordinate{X: 20, Y: 14}) {
		t.Fatalf("food = %v", r.Food())
	}
	out := r.Advance()
	if !out.Ate || out.Lost() {
		t.Fatalf("outcome = %+v", out)
	}
	if r.Score() != 1 || r.Snake().Len() != 6 {
		t.Fatalf("score=%d len=%d, want 1 and 6", r.Score(), r.Snake().Len())
	}
	if r.Food() != (core.Coordinate{X: 3, Y: 7}) {
		t.Fatalf("respawned food = %v", r.Food())
	}
	if r.Snake().Tail() != (core.Coordinate{X: 15, Y: 14}) {
		t.Fatalf("tail moved on growth: %v", r.Snake().Tail())
	}
}

func TestReversalRejected(t *testing.T) {
	cases := []struct {
		heading core.Direction
		reverse core.Direction
	}{
		{core.Right, core.Left},
		{core.Left, core.Right},
		{core.Up, core.Down},
		{core.Down, core.Up},
	}
	for _, tc := range cases {
		t.Run(tc.heading.String(), func(t *testing.T) {
			s := NewSnake(core.Coordinate{X: 10, Y: 10}, 5, tc.heading)
			if s.Turn(tc.reverse) {
				t.Fatal("reversal accepted")
			}
			if s.Direction() != tc.heading {
				t.Fatalf("direction = %v", s.Direction())
			}
		})
	}
}

func TestDoubleTurnCannotReverse(t *testing.T) {
	r := newRound(t, defaultGrid(t), 0, 0)
	if !r.Turn(core.Up) {
		t.Fatal("perpendicular turn rejected")
	}
	if r.Turn(core.Left) {
		t.Fatal("left accepted before the up move happened")
	}
	if r.Turn(core.Down) {
		t.Fatal("down accepted while heading up")
	}
	r.Advance()
	if !r.Turn(core.Left) {
		t.Fatal("left rejected after moving up")
	}
}

func TestSelfCollision(t *testing.T) {
	r := newRound(t, defaultGrid(t), 0, 0)
	for _, d := range []core.Direction{core.Up, core.Left} {
		r.Turn(d)
		if out := r.Advance(); out.Lost() {
			t.Fatalf("lost while turning %v", d)
		}
	}
	r.Turn(core.Down)
	out := r.Advance()
	if out.Cause != CauseSelf {
		t.Fatalf("cause = %v, want self", out.Cause)
	}
	if r.Ended() != CauseSelf {
		t.Fatalf("Ended = %v", r.Ended())
	}
}

func TestChasingTailIsNotCollision(t *testing.T) {
	g := defaultGrid(t)
	r, err := NewRound(g, NewSpawner(&seq{vals: []int{0}}, PolicyOverlap), 4)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	for _, d := range []core.Direction{core.Up, core.Left, core.Down} {
		r.Turn(d)
		if out := r.Advance(); out.Lost() {
			t.Fatalf("moving %v into vacated tail reported %v", d, out.Cause)
		}
	}
}

func TestNewRoundGridTooSmall(t *testing.T) {
	g, err := core.BuildGrid(140, 100, 20, 20)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	_, err = NewRound(g, NewSpawner(&seq{vals: []int{0}}, PolicyOverlap), DefaultLength)
	if !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("err = %v, want ErrGridTooSmall", err)
	}
}

func TestRoundProperties(t *testing.T) {
	g := defaultGrid(t)
	for seed := int64(1); seed <= 20; seed++ {
		rng := pcore.NewRNG(seed)
		r, err := NewRound(g, NewSpawner(rng, PolicyReroll), DefaultLength)
		if err != nil {
			t.Fatalf("NewRound: %v", err)
		}
		pilot := NewWanderer(rng)
		for i := 0; i < 2000; i++ {
			prevLen, prevScore := r.Snake().Len(), r.Score()
			prevDir := r.Snake().Direction()
			d := pilot.Steer(r)
			if d == prevDir.Opposite() {
				t.Fatalf("seed %d tick %d: pilot reversed", seed, i)
			}
			out := r.Advance()
			if out.Lost() {
				break
			}
			if !g.Contains(r.Snake().Head()) {
				t.Fatalf("seed %d tick %d: head %v left the grid", seed, i, r.Snake().Head())
			}
			wantLen := prevLen
			if out.Ate {
				wantLen++
				if r.Score() != prevScore+1 {
					t.Fatalf("seed %d tick %d: score %d after eating from %d", seed, i, r.Score(), prevScore)
				}
			} else if r.Score() != prevScore {
				t.Fatalf("seed %d tick %d: score changed without eating", seed, i)
			}
			if r.Snake().Len() != wantLen {
				t.Fatalf("seed %d tick %d: len %d, want %d", seed, i, r.Snake().Len(), wantLen)
			}
		}
	}
}

func TestAbandon(t *testing.T) {
	r := newRound(t, defaultGrid(t), 0, 0)
	r.Advance()
	r.Abandon()
	if r.Ended() != CauseAbandoned {
		t.Fatalf("Ended = %v", r.Ended())
	}
	head := r.Snake().Head()
	if out := r.Advance(); out.Cause != CauseAbandoned || r.Snake().Head() != head {
		t.Fatal("abandoned round kept moving")
	}
	if r.Turn(core.Up) {
		t.Fatal("abandoned round accepted a turn")
	}
	if s := r.Summary(); s.Ticks != 1 || s.Cause != CauseAbandoned {
		t.Fatalf("summary = %+v", s)
	}
}
