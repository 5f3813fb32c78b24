package app

import (
	"context"

	"gridsnake/internal/fsm"
	"gridsnake/internal/input"
)

func (s *Session) menuLoop(ctx context.Context) (fsm.Transition, error) {
	if err := s.drawMenu(); err != nil {
		return 0, err
	}
	for {
		ev, err := s.events.Next(ctx)
		if err != nil {
			return 0, err
		}
		switch cmd := input.Route(input.Menu, ev); cmd.Action {
		case input.MenuToggle:
			if s.menu == optNewGame {
				s.menu = optExit
			} else {
				s.menu = optNewGame
			}
			if err := s.drawMenu(); err != nil {
				return 0, err
			}
		case input.Confirm:
			if s.menu == optExit {
				return fsm.Quit, nil
			}
			return fsm.Play, nil
		case input.Exit:
			return fsm.Quit, nil
		}
	}
}

func (s *Session) playLoop(ctx context.Context) (fsm.Transition, error) {
	if err := s.drawPlay(false); err != nil {
		return 0, err
	}
	for {
		ev, err := s.events.Next(ctx)
		if err != nil {
			return 0, err
		}
		cmd := input.Route(input.Play, ev)
		switch cmd.Action {
		case input.Step:
			out := s.round.Advance()
			if out.Lost() {
				return fsm.Lose, nil
			}
			if out.Ate && s.sound != nil {
				s.sound.Eat()
			}
			if err := s.drawPlay(false); err != nil {
				return 0, err
			}
		case input.Turn:
			s.round.Turn(cmd.Dir)
		case input.FastOn:
			s.setFast(true)
		case input.FastOff:
			s.setFast(false)
		case input.ToggleGrid:
			s.showGrid = !s.showGrid
			if err := s.drawPlay(false); err != nil {
				return 0, err
			}
		case input.Suspend:
			return fsm.Pause, nil
		case input.GiveUp:
			return fsm.Lose, nil
		case input.Exit:
			return fsm.Quit, nil
		}
	}
}

func (s *Session) pauseLoop(ctx context.Context) (fsm.Transition, error) {
	if err := s.drawPlay(true); err != nil {
		return 0, err
	}
	for {
		ev, err := s.events.Next(ctx)
		if err != nil {
			return 0, err
		}
		switch input.Route(input.Pause, ev).Action {
		case input.Resume:
			return fsm.Play, nil
		case input.GiveUp:
			return fsm.Lose, nil
		case input.Exit:
			return fsm.Quit, nil
		}
	}
}

func (s *Session) gameOverLoop(ctx context.Context) (fsm.Transition, error) {
	if err := s.drawGameOver(); err != nil {
		return 0, err
	}
	for {
		ev, err := s.events.Next(ctx)
		if err != nil {
			return 0, err
		}
		switch input.Route(input.GameOver, ev).Action {
		case input.Restart:
			return fsm.Play, nil
		case input.Exit:
			return fsm.Quit, nil
		}
	}
}
