// Package event merges frontend input and the simulation timer into one
// ordered stream consumed by the session.
package event

// Kind classifies an Event.
type Kind uint8

const (
	Press Kind = iota
	Release
	Tick
	Quit
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Tick:
		return "tick"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Key is a frontend-neutral key identifier.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyQ
	KeyG
	// KeyOther is any key without a dedicated binding.
	KeyOther
)

var keyNames = [...]string{
	KeyNone:   "none",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	KeySpace:  "space",
	KeyH:      "h",
	KeyJ:      "j",
	KeyK:      "k",
	KeyL:      "l",
	KeyQ:      "q",
	KeyG:      "g",
	KeyOther:  "other",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Event is one input or timer occurrence.
type Event struct {
	Kind Kind
	Key  Key
}

// Down returns a key press event.
func Down(k Key) Event { return Event{Kind: Press, Key: k} }

// Up returns a key release event.
func Up(k Key) Event { return Event{Kind: Release, Key: k} }
