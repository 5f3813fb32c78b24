package config

import (
	"flag"
	"time"
)

// Flags mirrors the settings that can be overridden on the command line.
type Flags struct {
	Path string

	frontend   string
	seed       int64
	width      int
	height     int
	cell       int
	scale      int
	normal     time.Duration
	fast       time.Duration
	foodPolicy string
	fontPath   string
	sound      bool
	logLevel   string
	logFile    string
	statsDir   string
}

// Bind registers the override flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", "", "path to config.yaml (empty = use defaults)")
	fs.StringVar(&f.frontend, "frontend", "", "frontend to run (term, window, raylib)")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed for food placement (0 = time-based)")
	fs.IntVar(&f.width, "width", 0, "window width in pixels")
	fs.IntVar(&f.height, "height", 0, "window height in pixels")
	fs.IntVar(&f.cell, "cell", 0, "cell size in pixels")
	fs.IntVar(&f.scale, "scale", 0, "window scale factor")
	fs.DurationVar(&f.normal, "speed", 0, "tick interval at normal speed")
	fs.DurationVar(&f.fast, "fast", 0, "tick interval while Enter is held")
	fs.StringVar(&f.foodPolicy, "food", "", "food placement policy (overlap, reroll)")
	fs.StringVar(&f.fontPath, "font", "", "TTF font for window frontends")
	fs.BoolVar(&f.sound, "sound", false, "play sound cues")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&f.statsDir, "stats-dir", "", "directory for the per-round CSV log")
}

// Apply copies the flags the user actually set on fs into c.
func (f *Flags) Apply(c *Config, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frontend":
			c.Frontend = f.frontend
		case "seed":
			c.Game.Seed = f.seed
		case "width":
			c.Window.Width = f.width
		case "height":
			c.Window.Height = f.height
		case "cell":
			c.Window.Cell = f.cell
		case "scale":
			c.Window.Scale = f.scale
		case "speed":
			c.Speed.Normal = f.normal
		case "fast":
			c.Speed.Fast = f.fast
		case "food":
			c.Game.FoodPolicy = f.foodPolicy
		case "font":
			c.Font.Path = f.fontPath
		case "sound":
			c.Sound.Enabled = f.sound
		case "log-level":
			c.Log.Level = f.logLevel
		case "log-file":
			c.Log.File = f.logFile
		case "stats-dir":
			c.Stats.OutputDir = f.statsDir
		}
	})
}
