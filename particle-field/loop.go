package particles

import (
	"context"
	"time"
)

// Scheduler blocks until the next frame should be rendered.
type Scheduler interface {
	Next(ctx context.Context) error
}

// Run steps the field once per scheduler slot until ctx is cancelled.
func Run(ctx context.Context, f *Field, sched Scheduler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.Step()
		if err := sched.Next(ctx); err != nil {
			return err
		}
	}
}

// Ticker is a Scheduler firing at a fixed frame rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker producing fps frames per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Next waits for the next tick.
func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the ticker.
func (t *Ticker) Stop() {
	t.t.Stop()
}
