package engine

import (
	"context"
	"errors"
	"time"
)

// ErrRunning is returned by Run when the engine is already counting down
var ErrRunning = errors.New("engine already running")

// Run counts e down until it completes, consuming one tick per value read
// from ticks. It returns ctx.Err() when ctx ends first; the engine is
// released on every return path, so it can be resumed later.
func Run(ctx context.Context, e *Engine, ticks <-chan time.Time) error {
	if e.Complete() {
		return nil
	}
	if !e.Start() {
		if e.Complete() {
			return nil
		}
		return ErrRunning
	}
	defer e.Release()

	handle := e.Handle()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if !e.Tick(handle) {
				return nil
			}
		}
	}
}

// RunEvery is Run driven by a ticker of the given interval
func RunEvery(ctx context.Context, e *Engine, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	return Run(ctx, e, ticker.C)
}
