// Package fsm holds the screen state machine: the legal (state, transition)
// pairs and a Machine that applies them.
package fsm

import "fmt"

// State is the active screen.
type State uint8

const (
	Starting State = iota
	Playing
	Paused
	GameOver
	// Exit is terminal; no transition leaves it.
	Exit
	numStates
)

func (s State) String() string {
	switch s {
	case Starting:
		return "STARTING"
	case Playing:
		return "PLAYING"
	case Paused:
		return "PAUSED"
	case GameOver:
		return "GAMEOVER"
	case Exit:
		return "EXIT"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Transition is a request raised by a screen.
type Transition uint8

const (
	Play Transition = iota
	Pause
	Lose
	Quit
	numTransitions
)

func (t Transition) String() string {
	switch t {
	case Play:
		return "PLAY"
	case Pause:
		return "PAUSE"
	case Lose:
		return "LOSE"
	case Quit:
		return "EXIT"
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}

// TransitionError reports a pair missing from the table.
type TransitionError struct {
	State      State
	Transition Transition
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s from state %s", e.Transition, e.State)
}

type edge struct {
	to State
	ok bool
}

var table = [numStates][numTransitions]edge{
	Starting: {
		Play: {Playing, true},
		Quit: {Exit, true},
	},
	Playing: {
		Pause: {Paused, true},
		Lose:  {GameOver, true},
		Quit:  {Exit, true},
	},
	Paused: {
		Play: {Playing, true},
		Lose: {GameOver, true},
		Quit: {Exit, true},
	},
	GameOver: {
		Play: {Starting, true},
		Quit: {Exit, true},
	},
}

// Next returns the state reached by applying t in s.
func Next(s State, t Transition) (State, error) {
	if s >= numStates || t >= numTransitions || !table[s][t].ok {
		return s, &TransitionError{State: s, Transition: t}
	}
	return table[s][t].to, nil
}

// Hook observes an applied transition.
type Hook func(from State, t Transition, to State)

// Machine tracks the active screen.
type Machine struct {
	state State
	hooks []Hook
}

// New returns a Machine in the Starting state.
func New() *Machine { return &Machine{state: Starting} }

// State returns the active screen.
func (m *Machine) State() State { return m.state }

// Done reports whether the machine reached Exit.
func (m *Machine) Done() bool { return m.state == Exit }

// OnTransition registers h to run after each applied transition.
func (m *Machine) OnTransition(h Hook) {
	if h != nil {
		m.hooks = append(m.hooks, h)
	}
}

// Fire applies t. An invalid pair leaves the state unchanged and returns a
// *TransitionError.
func (m *Machine) Fire(t Transition) error {
	next, err := Next(m.state, t)
	if err != nil {
		return err
	}
	from := m.state
	m.state = next
	for _, h := range m.hooks {
		h(from, t, next)
	}
	return nil
}
