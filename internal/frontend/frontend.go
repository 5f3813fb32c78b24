// Package frontend holds the registry of presentation backends. Each backend
// owns the OS resources (terminal, window, audio device) and feeds input into
// an event.Queue while a session paints through a render.Canvas.
package frontend

import (
	"context"
	"fmt"
	"sort"

	"gridsnake/internal/config"
	"gridsnake/internal/event"
	"gridsnake/internal/render"
)

// PlayFunc runs a session against canvas until it finishes.
type PlayFunc func(ctx context.Context, canvas render.Canvas) error

// Frontend is one presentation backend.
type Frontend interface {
	Name() string
	// Run sets the backend up, calls play on a separate goroutine and pumps
	// input into q until play returns or the user closes the backend.
	Run(ctx context.Context, q *event.Queue, play PlayFunc) error
}

// Factory constructs a Frontend from configuration.
type Factory func(cfg *config.Config) (Frontend, error)

var frontends = map[string]Factory{}

// Register adds a frontend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// Lookup builds the frontend registered under name.
func Lookup(name string, cfg *config.Config) (Frontend, error) {
	f, ok := frontends[name]
	if !ok {
		return nil, fmt.Errorf("unknown frontend %q (have %v)", name, Names())
	}
	return f(cfg)
}

// Names lists the registered frontends in sorted order.
func Names() []string {
	names := make([]string, 0, len(frontends))
	for n := range frontends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Session runs play on its own goroutine and returns a channel that yields
// its result once. Frontends whose main loop must stay on the calling
// goroutine use it to start the game.
func Session(ctx context.Context, canvas render.Canvas, play PlayFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- play(ctx, canvas)
	}()
	return done
}
