package frontend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gridsnake/internal/config"
	"gridsnake/internal/event"
	"gridsnake/internal/render"
)

type fake struct{ name string }

func (f fake) Name() string { return f.name }

func (f fake) Run(ctx context.Context, q *event.Queue, play PlayFunc) error {
	return <-Session(ctx, nil, play)
}

func TestRegistry(t *testing.T) {
	Register("fake-test", func(*config.Config) (Frontend, error) { return fake{name: "fake-test"}, nil })
	Register("", func(*config.Config) (Frontend, error) { return nil, nil })

	fe, err := Lookup("fake-test", config.Default())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if fe.Name() != "fake-test" {
		t.Fatalf("name = %q", fe.Name())
	}
	for _, n := range Names() {
		if n == "" {
			t.Fatal("empty name registered")
		}
	}
	if _, err := Lookup("missing", config.Default()); err == nil || !strings.Contains(err.Error(), "fake-test") {
		t.Fatalf("err = %v, want listing of known frontends", err)
	}
}

func TestSessionForwardsResult(t *testing.T) {
	want := errors.New("boom")
	fe := fake{name: "x"}
	got := fe.Run(context.Background(), nil, func(ctx context.Context, c render.Canvas) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("got %v", got)
	}
}
