package scrubber

import (
	"math"
	"time"
)

// Events are the notifications a Timeline emits. Nil handlers are skipped.
type Events struct {
	Play       func()
	Pause      func()
	TimeUpdate func()
}

// Timeline is an in-memory Media whose position advances with elapsed time.
// It has no decoder behind it and is used where no real video element exists.
type Timeline struct {
	duration float64
	pos      float64
	paused   bool
	events   Events
}

// NewTimeline returns a paused timeline of the given length in seconds.
func NewTimeline(duration float64) *Timeline {
	return &Timeline{duration: duration, paused: true}
}

// Notify registers the event handlers.
func (t *Timeline) Notify(ev Events) {
	t.events = ev
}

// Attach wires the timeline notifications to a session.
func (t *Timeline) Attach(s *Session) {
	t.Notify(Events{
		Play:       s.OnPlay,
		Pause:      s.OnPause,
		TimeUpdate: s.OnTimeUpdate,
	})
}

func (t *Timeline) Play() {
	if !t.paused {
		return
	}
	if t.pos >= t.duration {
		t.pos = 0
	}
	t.paused = false
	emit(t.events.Play)
}

func (t *Timeline) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	emit(t.events.Pause)
}

func (t *Timeline) Paused() bool {
	return t.paused
}

func (t *Timeline) Duration() float64 {
	return t.duration
}

func (t *Timeline) CurrentTime() float64 {
	return t.pos
}

// Seek moves the position, bounded by the timeline's length.
func (t *Timeline) Seek(pos float64) {
	if math.IsNaN(pos) {
		return
	}
	t.pos = math.Max(0, math.Min(t.duration, pos))
	emit(t.events.TimeUpdate)
}

// Advance moves a playing timeline forward by dt and pauses it at the end.
func (t *Timeline) Advance(dt time.Duration) {
	if t.paused {
		return
	}
	t.pos += dt.Seconds()
	ended := t.pos >= t.duration
	if ended {
		t.pos = t.duration
	}
	emit(t.events.TimeUpdate)
	if ended {
		t.Pause()
	}
}

func emit(fn func()) {
	if fn != nil {
		fn()
	}
}
