package app

import (
	"fmt"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
)

const (
	newGameLabel = "New Game"
	exitLabel    = "Exit"
	lostMessage  = "You lost! Press any key to continue..."
	pausedLabel  = "Paused"
)

var (
	regular = render.TextStyle{Color: render.Ink}
	bold    = render.TextStyle{Bold: true, Color: render.Ink}
)

func menuLabel(text string, selected bool) string {
	if selected {
		return "> " + text
	}
	return "  " + text
}

// centered draws text with its center at (cx, cy).
func centered(c render.Canvas, text string, style render.TextStyle, cx, cy int) *render.Texture {
	t := c.RenderText(text, style)
	c.DrawTexture(t, cx-t.W/2, cy-t.H/2)
	return t
}

func (s *Session) frame() {
	s.canvas.Clear(render.Background)
	s.canvas.DrawRect(s.grid.Area, render.Border, false)
}

func (s *Session) drawMenu() error {
	s.frame()
	cx, cy := s.window.W/2, s.window.H/2
	spacing := s.grid.Area.X
	centered(s.canvas, menuLabel(newGameLabel, s.menu == optNewGame), bold, cx, cy)
	centered(s.canvas, menuLabel(exitLabel, s.menu == optExit), bold, cx, cy+2*spacing)
	return s.canvas.Present()
}

func (s *Session) drawPlay(paused bool) error {
	s.frame()
	if err := DrawBoard(s.canvas, s.grid, s.round, s.showGrid); err != nil {
		return err
	}
	s.drawScore()
	if paused {
		centered(s.canvas, pausedLabel, bold, s.window.W/2, s.window.H/2)
	}
	return s.canvas.Present()
}

func (s *Session) drawGameOver() error {
	s.frame()
	cx, cy := s.window.W/2, s.window.H/2
	centered(s.canvas, lostMessage, regular, cx, cy)
	if s.round != nil {
		centered(s.canvas, scoreText(s.round.Score()), regular, cx, cy+2*s.grid.Area.Y)
	}
	return s.canvas.Present()
}

func (s *Session) drawScore() {
	if s.round == nil {
		return
	}
	t := s.canvas.RenderText(scoreText(s.round.Score()), regular)
	y := (s.grid.Area.Y - t.H) / 2
	if y < 0 {
		y = 0
	}
	s.canvas.DrawTexture(t, s.grid.Area.X, y)
}

func scoreText(n int) string { return fmt.Sprintf("Score: %d", n) }

// DrawBoard paints the optional cell grid, the snake and the food. Food is
// drawn last so it stays visible when it overlaps the body.
func DrawBoard(c render.Canvas, g *core.Grid, r *game.Round, showGrid bool) error {
	if showGrid {
		for _, rect := range g.Cells() {
			c.DrawRect(rect, render.GridLine, false)
		}
	}
	if r == nil {
		return nil
	}
	body := r.Snake().Body()
	for i, cell := range body {
		rect, err := g.CellRect(cell)
		if err != nil {
			return fmt.Errorf("draw snake: %w", err)
		}
		col := render.Body
		if i == 0 {
			col = render.Head
		}
		c.DrawRect(rect, col, true)
	}
	rect, err := g.CellRect(r.Food())
	if err != nil {
		return fmt.Errorf("draw food: %w", err)
	}
	c.DrawRect(rect, render.Food, true)
	return nil
}
