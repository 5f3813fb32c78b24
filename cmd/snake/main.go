package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/config"
	"gridsnake/internal/core"
	"gridsnake/internal/event"
	"gridsnake/internal/frontend"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
	"gridsnake/internal/stats"
	pcore "gridsnake/pkg/core"

	_ "gridsnake/internal/raywin"
	_ "gridsnake/internal/term"
	_ "gridsnake/internal/ui"
)

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	flags.Apply(cfg, flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: invalid config:\n%v\n", err)
		os.Exit(2)
	}

	logger, closer, err := setupLogging(cfg.Log, cfg.Frontend == "term")
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	err = run(cfg, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	w := cfg.Window
	grid, err := core.BuildGrid(w.Width, w.Height, w.Spacing, w.Cell)
	if err != nil {
		return err
	}
	policy, err := game.ParsePolicy(cfg.Game.FoodPolicy)
	if err != nil {
		return err
	}
	rng := pcore.NewRNG(cfg.Game.Seed)
	pacer := core.NewPacer(cfg.Speed.Normal, cfg.Speed.Fast)

	out, err := stats.NewOutput(cfg.Stats.OutputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if out != nil {
		if err := cfg.WriteYAML(filepath.Join(out.Dir(), "config.yaml")); err != nil {
			return err
		}
	}
	tracker := stats.NewTracker(stats.NewSessionID(), rng.Seed(), out)
	logger = logger.With("session", tracker.Session())

	var sound app.Sounder
	if cfg.Sound.Enabled {
		p, err := audio.NewPlayer(logger)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer p.Close()
			sound = p
		}
	}

	fe, err := frontend.Lookup(cfg.Frontend, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	q := event.NewQueue(64, pacer.Interval())
	defer q.Close()

	spawner := game.NewSpawner(rng, policy)
	logger.Info("starting",
		"frontend", fe.Name(),
		"grid", fmt.Sprintf("%dx%d", grid.HCells, grid.VCells),
		"cell_px", grid.CellSize(),
		"seed", rng.Seed(),
		"food_policy", spawner.Policy().String(),
	)

	play := func(ctx context.Context, canvas render.Canvas) error {
		s, err := app.NewSession(canvas, q, app.Options{
			Grid:          grid,
			Window:        core.Size{W: w.Width, H: w.Height},
			Spawner:       spawner,
			InitialLength: cfg.Game.InitialLength,
			Pacer:         pacer,
			Sound:         sound,
			Observer:      tracker,
			Logger:        logger,
		})
		if err != nil {
			return err
		}
		q.Start()
		defer q.Close()
		return s.Run(ctx)
	}
	err = fe.Run(ctx, q, play)

	sum := tracker.Summary()
	logger.Info("session summary",
		"rounds", sum.Rounds,
		"mean_score", sum.MeanScore,
		"std_score", sum.StdScore,
		"max_score", sum.MaxScore,
		"mean_ticks", sum.MeanTicks,
	)
	return err
}
