// Package input maps raw events to per-screen commands.
package input

import (
	"gridsnake/internal/core"
	"gridsnake/internal/event"
)

// Mode selects the active key table.
type Mode uint8

const (
	Menu Mode = iota
	Play
	Pause
	GameOver
)

// Action is the semantic meaning of an event on a screen.
type Action uint8

const (
	None Action = iota
	// Exit leaves the program.
	Exit
	// GiveUp abandons the running round.
	GiveUp
	MenuToggle
	Confirm
	Turn
	FastOn
	FastOff
	ToggleGrid
	Suspend
	Resume
	Step
	// Restart returns from the game-over screen to the menu.
	Restart
)

var actionNames = [...]string{
	None:       "none",
	Exit:       "exit",
	GiveUp:     "give-up",
	MenuToggle: "menu-toggle",
	Confirm:    "confirm",
	Turn:       "turn",
	FastOn:     "fast-on",
	FastOff:    "fast-off",
	ToggleGrid: "toggle-grid",
	Suspend:    "pause",
	Resume:     "resume",
	Step:       "step",
	Restart:    "restart",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Command is a routed action plus its heading for Turn.
type Command struct {
	Action Action
	Dir    core.Direction
}

type binding struct {
	kind event.Kind
	key  event.Key
}

func press(k event.Key) binding   { return binding{event.Press, k} }
func release(k event.Key) binding { return binding{event.Release, k} }

func turn(d core.Direction) Command { return Command{Action: Turn, Dir: d} }

var keymaps = map[Mode]map[binding]Command{
	Menu: {
		press(event.KeyUp):     {Action: MenuToggle},
		press(event.KeyDown):   {Action: MenuToggle},
		press(event.KeyK):      {Action: MenuToggle},
		press(event.KeyJ):      {Action: MenuToggle},
		press(event.KeyEnter):  {Action: Confirm},
		press(event.KeyEscape): {Action: Exit},
	},
	Play: {
		press(event.KeyUp):      turn(core.Up),
		press(event.KeyDown):    turn(core.Down),
		press(event.KeyLeft):    turn(core.Left),
		press(event.KeyRight):   turn(core.Right),
		press(event.KeyK):       turn(core.Up),
		press(event.KeyJ):       turn(core.Down),
		press(event.KeyH):       turn(core.Left),
		press(event.KeyL):       turn(core.Right),
		press(event.KeyEnter):   {Action: FastOn},
		release(event.KeyEnter): {Action: FastOff},
		press(event.KeyG):       {Action: ToggleGrid},
		press(event.KeySpace):   {Action: Suspend},
		press(event.KeyEscape):  {Action: GiveUp},
		press(event.KeyQ):       {Action: GiveUp},
	},
	Pause: {
		press(event.KeySpace):  {Action: Resume},
		press(event.KeyEscape): {Action: GiveUp},
		press(event.KeyQ):      {Action: GiveUp},
	},
	GameOver: {
		press(event.KeyEscape): {Action: Exit},
	},
}

// Route maps ev to a command for mode m. Window close is Exit on every
// screen; ticks only drive the playing screen.
func Route(m Mode, ev event.Event) Command {
	switch ev.Kind {
	case event.Quit:
		return Command{Action: Exit}
	case event.Tick:
		if m == Play {
			return Command{Action: Step}
		}
		return Command{}
	}
	if cmd, ok := keymaps[m][binding{ev.Kind, ev.Key}]; ok {
		return cmd
	}
	if m == GameOver && ev.Kind == event.Press {
		return Command{Action: Restart}
	}
	return Command{}
}
