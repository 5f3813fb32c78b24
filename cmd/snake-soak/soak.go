package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"gridsnake/internal/app"
	"gridsnake/internal/config"
	"gridsnake/internal/core"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
	pcore "gridsnake/pkg/core"
)

// loadSettings loads and validates the config. A non-empty policyName
// overrides game.food_policy.
func loadSettings(path, policyName string) (*config.Config, game.Policy, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, 0, err
	}
	if policyName != "" {
		cfg.Game.FoodPolicy = policyName
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid config: %w", err)
	}
	policy, err := game.ParsePolicy(cfg.Game.FoodPolicy)
	return cfg, policy, err
}

type scenario struct {
	seed     int64
	policy   game.Policy
	length   int
	maxTicks int
}

type scenarioResult struct {
	seed    int64
	summary game.Summary
	round   *game.Round
	err     error
}

// runScenario plays one round with the wandering pilot and checks the
// per-tick movement rules.
func runScenario(g *core.Grid, sc scenario) scenarioResult {
	rng := pcore.NewRNG(sc.seed)
	r, err := game.NewRound(g, game.NewSpawner(rng, sc.policy), sc.length)
	if err != nil {
		return scenarioResult{seed: sc.seed, err: err}
	}
	pilot := game.NewWanderer(rng)
	for i := 0; i < sc.maxTicks; i++ {
		before := r.Summary()
		dir := r.Snake().Direction()
		if d := pilot.Steer(r); d == dir.Opposite() {
			return scenarioResult{seed: sc.seed, round: r, err: fmt.Errorf("tick %d: heading reversed from %v to %v", i, dir, d)}
		}
		out := r.Advance()
		if err := checkTick(g, r, before, out); err != nil {
			return scenarioResult{seed: sc.seed, round: r, err: fmt.Errorf("tick %d: %w", i, err)}
		}
		if out.Lost() {
			return scenarioResult{seed: sc.seed, summary: r.Summary(), round: r}
		}
	}
	r.Abandon()
	return scenarioResult{seed: sc.seed, summary: r.Summary(), round: r}
}

func checkTick(g *core.Grid, r *game.Round, before game.Summary, out game.Outcome) error {
	after := r.Summary()
	if out.Cause == game.CauseWall {
		if after.Length != before.Length || after.Score != before.Score {
			return fmt.Errorf("wall tick mutated the round: %+v -> %+v", before, after)
		}
		return nil
	}
	if !g.Contains(r.Snake().Head()) {
		return fmt.Errorf("head %v outside %dx%d grid", r.Snake().Head(), g.HCells, g.VCells)
	}
	wantLen, wantScore := before.Length, before.Score
	if out.Ate {
		wantLen++
		wantScore++
	}
	if after.Length != wantLen {
		return fmt.Errorf("length %d, want %d", after.Length, wantLen)
	}
	if after.Score != wantScore {
		return fmt.Errorf("score %d, want %d", after.Score, wantScore)
	}
	if out.Cause == game.CauseSelf && !bitten(r.Snake()) {
		return fmt.Errorf("self collision reported without overlap")
	}
	if out.Cause == game.CauseNone && bitten(r.Snake()) {
		return fmt.Errorf("overlap at %v not reported", r.Snake().Head())
	}
	return nil
}

func bitten(s *game.Snake) bool {
	body := s.Body()
	for _, c := range body[1:] {
		if c == body[0] {
			return true
		}
	}
	return false
}

// snapshot paints the final board of r into a PNG at path.
func snapshot(path string, w config.WindowConfig, g *core.Grid, r *game.Round) error {
	raster := render.NewRaster(w.Width, w.Height)
	rec := render.NewRecorder(w.Width, w.Height, raster, func(f *render.Frame) { raster.Paint(f) })
	rec.Clear(render.Background)
	rec.DrawRect(g.Area, render.Border, false)
	if err := app.DrawBoard(rec, g, r, true); err != nil {
		return err
	}
	rec.DrawTexture(rec.RenderText(fmt.Sprintf("Score: %d", r.Score()), render.TextStyle{Color: render.Ink}), g.Area.X, 0)
	if err := rec.Present(); err != nil {
		return err
	}
	return writePNG(path, raster.Image())
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}
