package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed is returned by Next once the queue has been closed.
var ErrClosed = errors.New("event queue closed")

// Queue is a bounded FIFO fed by frontends and by a periodic timer. At most one
// Tick is pending at any time; a timer firing while a Tick is still queued is
// dropped. Quit bypasses the buffer so a full queue cannot swallow it.
type Queue struct {
	events chan Event
	wake   chan struct{}
	kick   chan struct{}
	done   chan struct{}

	tickPending atomic.Bool
	quit        atomic.Bool
	interval    atomic.Int64

	startOnce sync.Once
	closeOnce sync.Once
}

// NewQueue builds a queue holding up to size events and ticking every interval
// once started.
func NewQueue(size int, interval time.Duration) *Queue {
	if size <= 0 {
		size = 64
	}
	q := &Queue{
		events: make(chan Event, size),
		wake:   make(chan struct{}, 1),
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	q.interval.Store(int64(interval))
	return q
}

// Start launches the timer goroutine. Later calls are no-ops.
func (q *Queue) Start() {
	q.startOnce.Do(func() { go q.run() })
}

// Interval returns the current tick period.
func (q *Queue) Interval() time.Duration { return time.Duration(q.interval.Load()) }

// SetInterval changes the tick period and restarts the countdown.
func (q *Queue) SetInterval(d time.Duration) {
	if d <= 0 || time.Duration(q.interval.Swap(int64(d))) == d {
		return
	}
	select {
	case q.kick <- struct{}{}:
	default:
	}
}

// Push enqueues ev without blocking. It reports false when the queue is full
// or closed.
func (q *Queue) Push(ev Event) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	switch ev.Kind {
	case Quit:
		q.quit.Store(true)
		select {
		case q.wake <- struct{}{}:
		default:
		}
		return true
	case Tick:
		return q.pushTick()
	}
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

func (q *Queue) pushTick() bool {
	if !q.tickPending.CompareAndSwap(false, true) {
		return false
	}
	select {
	case q.events <- Event{Kind: Tick}:
		return true
	default:
		q.tickPending.Store(false)
		return false
	}
}

// Next blocks until an event is available, ctx is done, or the queue closes.
func (q *Queue) Next(ctx context.Context) (Event, error) {
	for {
		if q.quit.CompareAndSwap(true, false) {
			return Event{Kind: Quit}, nil
		}
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-q.done:
			return Event{}, ErrClosed
		case <-q.wake:
			continue
		case ev := <-q.events:
			if ev.Kind == Tick {
				q.tickPending.Store(false)
			}
			return ev, nil
		}
	}
}

// Close stops the timer and wakes any blocked Next.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}

func (q *Queue) run() {
	t := time.NewTimer(q.Interval())
	defer t.Stop()
	for {
		select {
		case <-q.done:
			return
		case <-q.kick:
			t.Reset(q.Interval())
		case <-t.C:
			q.pushTick()
			t.Reset(q.Interval())
		}
	}
}
