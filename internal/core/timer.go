package core

import "time"

// Timer is a reusable countdown driven by elapsed frame deltas.
// It does not act on its own: owners poll Ready after Update and decide
// whether to Reset it, replace it or drop the entity that owns it.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	ready    bool
}

// NewTimer returns a timer armed with duration d. It is not ready.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Update advances the timer by delta.
func (t *Timer) Update(delta time.Duration) {
	t.elapsed += delta
	t.ready = t.elapsed >= t.duration
}

// Reset zeroes the elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.ready = false
}

// Ready reports whether the elapsed time reached the duration.
func (t Timer) Ready() bool {
	return t.ready
}

// Duration returns the time the timer needs to become ready.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left until ready, never negative.
func (t Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}
