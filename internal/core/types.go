package core

// Size describes pixel or cell dimensions.
type Size struct {
	W int
	H int
}

// Direction is a snake heading.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Opposite returns the heading that reverses d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit cell offset for one step along d. Screen y grows
// downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}
