package core

import "time"

const (
	// DefaultNormalInterval is the tick period at normal speed.
	DefaultNormalInterval = 200 * time.Millisecond
	// DefaultFastInterval is the tick period while the speed key is held.
	DefaultFastInterval = 50 * time.Millisecond
)

// Pacer tracks which of two tick periods is active.
type Pacer struct {
	normal time.Duration
	fast   time.Duration
	isFast bool
}

// NewPacer constructs a Pacer running at the normal period. Non-positive
// periods fall back to the defaults.
func NewPacer(normal, fast time.Duration) *Pacer {
	if normal <= 0 {
		normal = DefaultNormalInterval
	}
	if fast <= 0 {
		fast = DefaultFastInterval
	}
	return &Pacer{normal: normal, fast: fast}
}

// Interval returns the active tick period.
func (p *Pacer) Interval() time.Duration {
	if p.isFast {
		return p.fast
	}
	return p.normal
}

// Fast reports whether the fast period is active.
func (p *Pacer) Fast() bool { return p.isFast }

// SetFast switches between the fast and normal periods. It reports whether the
// active period changed.
func (p *Pacer) SetFast(on bool) bool {
	if p.isFast == on {
		return false
	}
	p.isFast = on
	return true
}
