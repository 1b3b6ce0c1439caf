// Package program plays exercise sessions: one countdown per exercise and a
// session countdown kept in step with it.
package program

import (
	"log"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
)

// Recorder stores completed session ids
type Recorder interface {
	Add(id int) error
}

// Player is one open session
type Player struct {
	session catalog.Item
	engine  *engine.Engine
	record  Recorder

	sessionRemaining int
	done             bool
	err              error
	onDone           func(id int)
}

// NewPlayer opens session on its first exercise. onDone runs once, after the
// completion has been recorded, so the caller can go back to the list.
func NewPlayer(session catalog.Item, record Recorder, onDone func(id int)) *Player {
	p := &Player{
		session:          session,
		record:           record,
		sessionRemaining: session.Minutes * 60,
		onDone:           onDone,
	}
	p.engine = engine.New(session.Steps(),
		engine.OnTick(p.tickSession),
		engine.OnComplete(p.complete),
	)
	return p
}

func (p *Player) tickSession() {
	if p.sessionRemaining > 0 {
		p.sessionRemaining--
	}
}

func (p *Player) complete() {
	p.done = true
	if p.record != nil {
		if err := p.record.Add(p.session.ID); err != nil {
			log.Printf("program: %v", err)
			p.err = err
		}
	}
	if p.onDone != nil {
		p.onDone(p.session.ID)
	}
}

// Session is the session being played
func (p *Player) Session() catalog.Item { return p.session }

// Toggle starts or pauses the current exercise. It reports whether ticks
// must be scheduled.
func (p *Player) Toggle() bool { return p.engine.Toggle() }

// Reset rewinds the current exercise only. The session countdown and the
// progress are left as they are.
func (p *Player) Reset() { p.engine.Reset() }

// Next skips to the following exercise, paused, or completes the session
// from the last one.
func (p *Player) Next() { p.engine.Skip() }

// Tick applies one second to the exercise and the session countdowns
func (p *Player) Tick(handle uint64) bool { return p.engine.Tick(handle) }

// Leave releases the timer when the player view goes away
func (p *Player) Leave() { p.engine.Release() }

// Handle is the tick handle of the running timer
func (p *Player) Handle() uint64 { return p.engine.Handle() }

// Engine is the exercise timer, for driving the player without a UI
func (p *Player) Engine() *engine.Engine { return p.engine }

// Running reports whether the exercise countdown is active
func (p *Player) Running() bool { return p.engine.Running() }

// Done reports whether the session has been completed
func (p *Player) Done() bool { return p.done }

// Err is the error of recording the completion, if any
func (p *Player) Err() error { return p.err }

// Index of the current exercise
func (p *Player) Index() int { return p.engine.Index() }

// Remaining seconds of the current exercise
func (p *Player) Remaining() int { return p.engine.Remaining() }

// SessionRemaining is the session countdown in seconds
func (p *Player) SessionRemaining() int { return p.sessionRemaining }

// Exercise is the current exercise
func (p *Player) Exercise() (catalog.Exercise, bool) {
	i := p.engine.Index()
	if i < 0 || i >= len(p.session.Exercises) {
		return catalog.Exercise{}, false
	}
	return p.session.Exercises[i], true
}

// Upcoming is the exercise after the current one
func (p *Player) Upcoming() (catalog.Exercise, bool) {
	i := p.engine.Index() + 1
	if i >= len(p.session.Exercises) {
		return catalog.Exercise{}, false
	}
	return p.session.Exercises[i], true
}

// Progress is the share of exercises reached, in percent
func (p *Player) Progress() int {
	n := len(p.session.Exercises)
	if n == 0 {
		return 0
	}
	return (p.engine.Index() + 1) * 100 / n
}
