// Package engine implements the timed-step countdown used by the assessment
// test flow and the exercise program player.
//
// An Engine is not safe for concurrent use. Whoever owns it (the bubbletea
// event loop, or the goroutine running Run) delivers ticks one at a time.
package engine

import "fmt"

// Step is one countdown segment
type Step struct {
	Name    string
	Minutes int
}

// Seconds is the full duration of the step
func (s Step) Seconds() int {
	if s.Minutes <= 0 {
		return 0
	}
	return s.Minutes * 60
}

// State of the engine as seen by a view
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine drives a single countdown across ordered steps
type Engine struct {
	steps     []Step
	index     int
	remaining int
	running   bool
	complete  bool

	// handle identifies the active periodic callback. Every start and every
	// stop moves it on, so ticks scheduled under an older handle are stale.
	handle uint64

	onStep     func(from, to int)
	onComplete func()
	onTick     func()
}

// Option configures an Engine
type Option func(*Engine)

// OnStep is called when the engine moves from one step to the next
func OnStep(fn func(from, to int)) Option {
	return func(e *Engine) { e.onStep = fn }
}

// OnComplete is called exactly once, when the last step expires or is skipped
func OnComplete(fn func()) Option {
	return func(e *Engine) { e.onComplete = fn }
}

// OnTick is called on every accepted one-second tick, before the decrement
func OnTick(fn func()) Option {
	return func(e *Engine) { e.onTick = fn }
}

// New creates an idle engine positioned on the first step. No timer is
// started until Start is called.
func New(steps []Step, opts ...Option) *Engine {
	e := &Engine{steps: append([]Step(nil), steps...)}
	for _, opt := range opts {
		opt(e)
	}
	e.remaining = e.stepSeconds(0)
	return e
}

// Start moves Idle or Paused to Running and acquires a fresh tick handle.
// It reports whether the caller should schedule ticks. A zero-length step
// expires immediately.
func (e *Engine) Start() bool {
	if e.complete || e.running {
		return false
	}
	e.running = true
	e.handle++
	if e.remaining <= 0 {
		e.expire(true)
	}
	return e.running
}

// Pause stops the countdown, keeping the remaining seconds
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.stop()
}

// Toggle starts a stopped engine or pauses a running one. It reports
// whether ticks must be scheduled.
func (e *Engine) Toggle() bool {
	if e.running {
		e.Pause()
		return false
	}
	return e.Start()
}

// Reset rewinds the current step, or the given one, to its full duration
// and stops the countdown. Out of range steps fall back to the first step.
// A completed engine is terminal and ignores Reset.
func (e *Engine) Reset(step ...int) {
	if e.complete {
		return
	}
	idx := e.index
	if len(step) > 0 {
		idx = step[0]
		if idx < 0 || idx >= len(e.steps) {
			idx = 0
		}
	}
	e.index = idx
	e.remaining = e.stepSeconds(idx)
	e.stop()
}

// Skip handles the current step as expired right away. The engine lands
// stopped on the next step, or completes when the current step is the last.
func (e *Engine) Skip() {
	if e.complete {
		return
	}
	e.stop()
	e.expire(false)
}

// Tick applies one elapsed second. Ticks carrying a stale handle, or
// arriving while stopped, are ignored. It reports whether the caller should
// keep ticking under the same handle.
func (e *Engine) Tick(handle uint64) bool {
	if handle != e.handle || !e.running {
		return false
	}
	if e.onTick != nil {
		e.onTick()
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.expire(true)
	}
	return e.running
}

// Release stops the engine when its view goes away. Outstanding ticks
// become stale; a later Start resumes from the preserved remaining time.
func (e *Engine) Release() {
	e.stop()
}

// expire moves past the current step. Consecutive zero-length steps are
// crossed in one go while running.
func (e *Engine) expire(keepRunning bool) {
	for {
		if e.index >= len(e.steps)-1 {
			e.finish()
			return
		}
		from := e.index
		e.index++
		e.remaining = e.stepSeconds(e.index)
		if !keepRunning {
			e.stop()
		}
		if e.onStep != nil {
			e.onStep(from, e.index)
		}
		if !keepRunning || e.remaining > 0 {
			return
		}
	}
}

func (e *Engine) finish() {
	e.remaining = 0
	e.stop()
	if e.complete {
		return
	}
	e.complete = true
	if e.onComplete != nil {
		e.onComplete()
	}
}

func (e *Engine) stop() {
	if e.running {
		e.running = false
		e.handle++
	}
}

func (e *Engine) stepSeconds(idx int) int {
	if idx < 0 || idx >= len(e.steps) {
		return 0
	}
	return e.steps[idx].Seconds()
}

// State reports the current state
func (e *Engine) State() State {
	switch {
	case e.complete:
		return StateComplete
	case e.running:
		return StateRunning
	case e.remaining < e.stepSeconds(e.index):
		return StatePaused
	default:
		return StateIdle
	}
}

// Handle is the tick handle to attach to scheduled ticks
func (e *Engine) Handle() uint64 { return e.handle }

// Index is the current step index
func (e *Engine) Index() int { return e.index }

// Remaining is the number of seconds left in the current step
func (e *Engine) Remaining() int { return e.remaining }

// Running reports whether the countdown is active
func (e *Engine) Running() bool { return e.running }

// Complete reports whether the last step has expired
func (e *Engine) Complete() bool { return e.complete }

// Len is the number of steps
func (e *Engine) Len() int { return len(e.steps) }

// Current returns the current step. ok is false for an engine without steps.
func (e *Engine) Current() (Step, bool) {
	if e.index < 0 || e.index >= len(e.steps) {
		return Step{}, false
	}
	return e.steps[e.index], true
}

// Upcoming returns the step after the current one, if any
func (e *Engine) Upcoming() (Step, bool) {
	next := e.index + 1
	if next >= len(e.steps) {
		return Step{}, false
	}
	return e.steps[next], true
}

// Clock formats seconds as m:ss
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
