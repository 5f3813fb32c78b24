// Package stats records finished rounds and summarizes them.
package stats

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gridsnake/internal/game"
)

// Record is one finished round.
type Record struct {
	Session    string `csv:"session"`
	Round      int    `csv:"round"`
	Started    string `csv:"started"`
	DurationMs int64  `csv:"duration_ms"`
	Score      int    `csv:"score"`
	Length     int    `csv:"length"`
	Ticks      int    `csv:"ticks"`
	Cause      string `csv:"cause"`
	Seed       int64  `csv:"seed"`
}

// Summary aggregates a set of rounds.
type Summary struct {
	Rounds    int
	MeanScore float64
	StdScore  float64
	MaxScore  float64
	MeanTicks float64
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string { return uuid.NewString() }

// Tracker collects rounds for one session and forwards them to an optional
// Output.
type Tracker struct {
	session string
	seed    int64
	out     *Output
	now     func() time.Time

	started time.Time
	records []Record
}

// NewTracker returns a Tracker. out may be nil.
func NewTracker(session string, seed int64, out *Output) *Tracker {
	return &Tracker{session: session, seed: seed, out: out, now: time.Now}
}

// Session returns the session identifier.
func (t *Tracker) Session() string { return t.session }

// RoundStarted marks the start time of the next round.
func (t *Tracker) RoundStarted() { t.started = t.now() }

// RoundEnded stores s and appends it to the output.
func (t *Tracker) RoundEnded(s game.Summary) error {
	end := t.now()
	if t.started.IsZero() {
		t.started = end
	}
	rec := Record{
		Session:    t.session,
		Round:      len(t.records) + 1,
		Started:    t.started.UTC().Format(time.RFC3339),
		DurationMs: end.Sub(t.started).Milliseconds(),
		Score:      s.Score,
		Length:     s.Length,
		Ticks:      s.Ticks,
		Cause:      s.Cause.String(),
		Seed:       t.seed,
	}
	t.records = append(t.records, rec)
	t.started = time.Time{}
	return t.out.Write(rec)
}

// Summary aggregates the rounds seen so far.
func (t *Tracker) Summary() Summary { return Summarize(t.records) }

// Summarize computes score and length statistics over records.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	scores := make([]float64, len(records))
	ticks := make([]float64, len(records))
	for i, r := range records {
		scores[i] = float64(r.Score)
		ticks[i] = float64(r.Ticks)
	}
	mean, std := stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		std = 0
	}
	return Summary{
		Rounds:    len(records),
		MeanScore: mean,
		StdScore:  std,
		MaxScore:  floats.Max(scores),
		MeanTicks: stat.Mean(ticks, nil),
	}
}
