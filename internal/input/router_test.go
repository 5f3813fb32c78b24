package input

import (
	"testing"

	"gridsnake/internal/core"
	"gridsnake/internal/event"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
		ev   event.Event
		want Command
	}{
		{"menu up toggles", Menu, event.Down(event.KeyUp), Command{Action: MenuToggle}},
		{"menu j toggles", Menu, event.Down(event.KeyJ), Command{Action: MenuToggle}},
		{"menu enter confirms", Menu, event.Down(event.KeyEnter), Command{Action: Confirm}},
		{"menu escape exits", Menu, event.Down(event.KeyEscape), Command{Action: Exit}},
		{"menu ignores tick", Menu, event.Event{Kind: event.Tick}, Command{}},
		{"menu ignores q", Menu, event.Down(event.KeyQ), Command{}},
		{"play arrow", Play, event.Down(event.KeyLeft), Command{Action: Turn, Dir: core.Left}},
		{"play vi up", Play, event.Down(event.KeyK), Command{Action: Turn, Dir: core.Up}},
		{"play vi right", Play, event.Down(event.KeyL), Command{Action: Turn, Dir: core.Right}},
		{"play enter held", Play, event.Down(event.KeyEnter), Command{Action: FastOn}},
		{"play enter released", Play, event.Up(event.KeyEnter), Command{Action: FastOff}},
		{"play grid", Play, event.Down(event.KeyG), Command{Action: ToggleGrid}},
		{"play space", Play, event.Down(event.KeySpace), Command{Action: Suspend}},
		{"play escape", Play, event.Down(event.KeyEscape), Command{Action: GiveUp}},
		{"play q", Play, event.Down(event.KeyQ), Command{Action: GiveUp}},
		{"play tick", Play, event.Event{Kind: event.Tick}, Command{Action: Step}},
		{"play arrow release", Play, event.Up(event.KeyLeft), Command{}},
		{"pause space", Pause, event.Down(event.KeySpace), Command{Action: Resume}},
		{"pause escape", Pause, event.Down(event.KeyEscape), Command{Action: GiveUp}},
		{"pause ignores arrows", Pause, event.Down(event.KeyUp), Command{}},
		{"pause ignores tick", Pause, event.Event{Kind: event.Tick}, Command{}},
		{"gameover escape", GameOver, event.Down(event.KeyEscape), Command{Action: Exit}},
		{"gameover any key", GameOver, event.Down(event.KeyOther), Command{Action: Restart}},
		{"gameover q restarts", GameOver, event.Down(event.KeyQ), Command{Action: Restart}},
		{"gameover release ignored", GameOver, event.Up(event.KeySpace), Command{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Route(tc.mode, tc.ev); got != tc.want {
				t.Fatalf("Route = %+v (%s), want %+v (%s)", got, got.Action, tc.want, tc.want.Action)
			}
		})
	}
}

func TestWindowCloseExitsEverywhere(t *testing.T) {
	for _, m := range []Mode{Menu, Play, Pause, GameOver} {
		if got := Route(m, event.Event{Kind: event.Quit}); got.Action != Exit {
			t.Fatalf("mode %d: close routed to %s", m, got.Action)
		}
	}
}
