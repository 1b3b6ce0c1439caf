// Package bilan implements the motor assessment: the list of fixed tests
// and the two-phase test detail (timed test, then evaluation).
package bilan

import (
	"errors"
	"fmt"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
)

// DefaultScore is the evaluation slider's starting value
const DefaultScore = 5

var (
	ErrNotEvaluated = errors.New("test is still running")
	ErrAlreadySaved = errors.New("evaluation already saved")
)

// Phase of a test detail
type Phase int

const (
	PhaseTest Phase = iota
	PhaseEvaluation
)

func (p Phase) String() string {
	if p == PhaseEvaluation {
		return "evaluation"
	}
	return "test"
}

// Outcome is reported upward when the user saves the evaluation
type Outcome struct {
	TestID      int
	Score       int
	MaxScore    int
	Observation string
}

// Reporter receives the outcome of a saved evaluation
type Reporter interface {
	Report(Outcome) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Outcome) error

func (f ReporterFunc) Report(o Outcome) error { return f(o) }

// Detail is one open test. A finished detail cannot be restarted; open a
// new one to take the test again.
type Detail struct {
	test     catalog.Item
	engine   *engine.Engine
	reporter Reporter

	phase       Phase
	score       int
	observation string
	saved       bool
}

// NewDetail opens test in the test phase with an idle timer
func NewDetail(test catalog.Item, reporter Reporter) *Detail {
	d := &Detail{
		test:     test,
		reporter: reporter,
		phase:    PhaseTest,
		score:    DefaultScore,
	}
	if test.MaxScore > 0 && d.score > test.MaxScore {
		d.score = test.MaxScore
	}
	d.engine = engine.New(test.Steps(), engine.OnComplete(func() {
		d.phase = PhaseEvaluation
	}))
	return d
}

// Test is the test being taken
func (d *Detail) Test() catalog.Item { return d.test }

// Phase is the current phase
func (d *Detail) Phase() Phase { return d.phase }

// Remaining is the number of seconds left on the test timer
func (d *Detail) Remaining() int { return d.engine.Remaining() }

// Running reports whether the test timer is counting down
func (d *Detail) Running() bool { return d.engine.Running() }

// Handle is the tick handle of the running timer
func (d *Detail) Handle() uint64 { return d.engine.Handle() }

// Engine is the test timer, for driving the detail without a UI
func (d *Detail) Engine() *engine.Engine { return d.engine }

// Toggle starts or pauses the timer. It reports whether ticks must be
// scheduled. Ignored during evaluation.
func (d *Detail) Toggle() bool {
	if d.phase != PhaseTest {
		return false
	}
	return d.engine.Toggle()
}

// Reset rewinds the timer to the full test duration, stopped
func (d *Detail) Reset() {
	if d.phase != PhaseTest {
		return
	}
	d.engine.Reset()
}

// Tick applies one second. The timer expiring moves the detail to evaluation.
func (d *Detail) Tick(handle uint64) bool {
	return d.engine.Tick(handle)
}

// Finish ends the test early and opens the evaluation
func (d *Detail) Finish() {
	if d.phase != PhaseTest {
		return
	}
	d.engine.Release()
	d.phase = PhaseEvaluation
}

// Score is the evaluation score
func (d *Detail) Score() int { return d.score }

// SetScore sets the evaluation score, clamped to [0, max score]
func (d *Detail) SetScore(n int) {
	if n < 0 {
		n = 0
	}
	if n > d.test.MaxScore {
		n = d.test.MaxScore
	}
	d.score = n
}

// AdjustScore moves the score by delta within bounds
func (d *Detail) AdjustScore(delta int) {
	d.SetScore(d.score + delta)
}

// Observation is the free-text note
func (d *Detail) Observation() string { return d.observation }

// SetObservation replaces the free-text note
func (d *Detail) SetObservation(s string) { d.observation = s }

// Saved reports whether SaveAndExit succeeded
func (d *Detail) Saved() bool { return d.saved }

// SaveAndExit reports the evaluation upward. It is the only place where
// completion of the test is signalled and succeeds at most once.
func (d *Detail) SaveAndExit() (Outcome, error) {
	if d.phase != PhaseEvaluation {
		return Outcome{}, ErrNotEvaluated
	}
	if d.saved {
		return Outcome{}, ErrAlreadySaved
	}
	out := Outcome{
		TestID:      d.test.ID,
		Score:       d.score,
		MaxScore:    d.test.MaxScore,
		Observation: d.observation,
	}
	if d.reporter != nil {
		if err := d.reporter.Report(out); err != nil {
			return Outcome{}, fmt.Errorf("report test %d: %w", d.test.ID, err)
		}
	}
	d.saved = true
	return out, nil
}

// Leave releases the timer when the detail view goes away
func (d *Detail) Leave() {
	d.engine.Release()
}
