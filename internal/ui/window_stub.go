//go:build !ebiten

package ui

import (
	"errors"

	"gridsnake/internal/config"
	"gridsnake/internal/frontend"
)

func init() {
	frontend.Register("window", New)
}

// New reports that the window frontend was not compiled in.
func New(*config.Config) (frontend.Frontend, error) {
	return nil, errors.New("the window frontend requires building with the 'ebiten' tag")
}
