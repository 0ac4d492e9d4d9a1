package effects

import "math"

const (
	// CounterDuration is the nominal run time of a counter in milliseconds.
	CounterDuration = 2000.0
	// FrameMillis is the assumed frame interval.
	FrameMillis = 16.0
)

// Counter counts up to a target over CounterDuration.
type Counter struct {
	target  int
	current float64
	step    float64
}

// NewCounter returns a counter starting at zero.
func NewCounter(target int) *Counter {
	return &Counter{
		target: target,
		step:   float64(target) / (CounterDuration / FrameMillis),
	}
}

// Step advances the counter by one frame. It returns the value to display
// and whether another frame is needed.
func (c *Counter) Step() (int, bool) {
	c.current += c.step
	if c.current < float64(c.target) {
		return int(math.Floor(c.current)), true
	}
	return c.target, false
}

// Once guards a trigger so it only fires a single time.
type Once struct {
	fired bool
}

// Fire reports true the first time cond holds, and false afterwards.
func (o *Once) Fire(cond bool) bool {
	if o.fired || !cond {
		return false
	}
	o.fired = true
	return true
}
