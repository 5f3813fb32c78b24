// Package app runs a game session: it owns the screen state machine, the
// live round and the per-screen interaction loops.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/event"
	"gridsnake/internal/fsm"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
)

// Source yields input and timer events in order.
type Source interface {
	Next(ctx context.Context) (event.Event, error)
	SetInterval(d time.Duration)
}

// Sounder plays round cues.
type Sounder interface {
	Eat()
	Crash()
}

// RoundObserver is told when rounds start and end.
type RoundObserver interface {
	RoundStarted()
	RoundEnded(s game.Summary) error
}

// Options configures a Session.
type Options struct {
	Grid          *core.Grid
	Window        core.Size
	Spawner       *game.Spawner
	InitialLength int
	Pacer         *core.Pacer
	Sound         Sounder       // optional
	Observer      RoundObserver // optional
	Logger        *slog.Logger  // optional
}

type menuOption uint8

const (
	optNewGame menuOption = iota
	optExit
)

// Session is the single owner of all mutable game state.
type Session struct {
	canvas  render.Canvas
	events  Source
	grid    *core.Grid
	window  core.Size
	spawner *game.Spawner
	length  int
	pacer   *core.Pacer
	sound   Sounder
	obs     RoundObserver
	log     *slog.Logger

	machine  *fsm.Machine
	round    *game.Round
	menu     menuOption
	showGrid bool
	rounds   int
}

// NewSession validates opts and returns a Session in the Starting state.
func NewSession(canvas render.Canvas, events Source, opts Options) (*Session, error) {
	if canvas == nil || events == nil {
		return nil, errors.New("session: canvas and event source are required")
	}
	if opts.Grid == nil || opts.Spawner == nil {
		return nil, errors.New("session: grid and spawner are required")
	}
	if opts.InitialLength <= 0 {
		opts.InitialLength = game.DefaultLength
	}
	if opts.Pacer == nil {
		opts.Pacer = core.NewPacer(0, 0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Window == (core.Size{}) {
		a := opts.Grid.Area
		opts.Window = core.Size{W: a.W + 2*a.X, H: a.H + 2*a.Y}
	}
	if err := game.Fits(opts.Grid, opts.InitialLength); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		canvas:  canvas,
		events:  events,
		grid:    opts.Grid,
		window:  opts.Window,
		spawner: opts.Spawner,
		length:  opts.InitialLength,
		pacer:   opts.Pacer,
		sound:   opts.Sound,
		obs:     opts.Observer,
		log:     opts.Logger,
		machine: fsm.New(),
	}
	s.machine.OnTransition(func(from fsm.State, t fsm.Transition, to fsm.State) {
		s.log.Debug("screen transition", "from", from, "transition", t, "to", to)
	})
	return s, nil
}

// State returns the active screen.
func (s *Session) State() fsm.State { return s.machine.State() }

// Round returns the current or most recent round, or nil before the first.
func (s *Session) Round() *game.Round { return s.round }

// Rounds returns the number of rounds started.
func (s *Session) Rounds() int { return s.rounds }

// Run drives screens until the machine reaches Exit. Context cancellation
// and a closed event source end the session cleanly. An invalid transition
// is returned as a *fsm.TransitionError.
func (s *Session) Run(ctx context.Context) error {
	s.events.SetInterval(s.pacer.Interval())
	for !s.machine.Done() {
		t, err := s.screen(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, event.ErrClosed) {
				s.log.Info("session stopped", "state", s.machine.State(), "reason", err)
				return nil
			}
			return err
		}
		if err := s.apply(t); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) screen(ctx context.Context) (fsm.Transition, error) {
	switch st := s.machine.State(); st {
	case fsm.Starting:
		return s.menuLoop(ctx)
	case fsm.Playing:
		return s.playLoop(ctx)
	case fsm.Paused:
		return s.pauseLoop(ctx)
	case fsm.GameOver:
		return s.gameOverLoop(ctx)
	default:
		return 0, fmt.Errorf("session: no screen for state %s", st)
	}
}

// apply fires t and runs the side effects of the resulting edge.
func (s *Session) apply(t fsm.Transition) error {
	from := s.machine.State()
	if err := s.machine.Fire(t); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	to := s.machine.State()

	if from == fsm.Playing {
		s.setFast(false)
	}
	switch {
	case from == fsm.Starting && to == fsm.Playing:
		return s.startRound()
	case t == fsm.Lose:
		s.endRound()
	case to == fsm.Starting:
		s.menu = optNewGame
	}
	return nil
}

func (s *Session) startRound() error {
	r, err := game.NewRound(s.grid, s.spawner, s.length)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.round = r
	s.rounds++
	if s.obs != nil {
		s.obs.RoundStarted()
	}
	s.log.Info("round started", "round", s.rounds, "food", r.Food().String())
	return nil
}

func (s *Session) endRound() {
	if s.round == nil {
		return
	}
	s.round.Abandon()
	sum := s.round.Summary()
	if sum.Cause == game.CauseWall || sum.Cause == game.CauseSelf {
		if s.sound != nil {
			s.sound.Crash()
		}
	}
	s.log.Info("round ended",
		"round", s.rounds,
		"score", sum.Score,
		"length", sum.Length,
		"ticks", sum.Ticks,
		"cause", sum.Cause.String(),
	)
	if s.obs != nil {
		if err := s.obs.RoundEnded(sum); err != nil {
			s.log.Warn("recording round failed", "error", err)
		}
	}
}

func (s *Session) setFast(on bool) {
	if s.pacer.SetFast(on) {
		s.events.SetInterval(s.pacer.Interval())
		s.log.Debug("speed changed", "fast", s.pacer.Fast(), "interval", s.pacer.Interval())
	}
}
