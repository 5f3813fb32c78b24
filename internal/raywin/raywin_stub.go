//go:build !raylib

package raywin

import (
	"errors"

	"gridsnake/internal/config"
	"gridsnake/internal/frontend"
)

func init() {
	frontend.Register("raylib", New)
}

// New reports that the raylib frontend was not compiled in.
func New(*config.Config) (frontend.Frontend, error) {
	return nil, errors.New("the raylib frontend requires building with the 'raylib' tag")
}
