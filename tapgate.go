package arplace

import "time"

// TapGate is a debounced double-tap detector. Every tap moves the gate's
// clock forward; a tap is accepted only when it follows the previous tap by
// less than Threshold. An isolated tap is always rejected.
//
// Taps at t, t+0.1s, t+0.5s with a 0.3s threshold yield reject, accept,
// reject. A rapid run of taps accepts every tap after the first, because the
// clock advances on every tap whether or not it was accepted.
type TapGate struct {
	Threshold time.Duration

	last   time.Duration
	primed bool
}

// NewTapGate creates a gate with the given double-tap threshold.
func NewTapGate(threshold time.Duration) TapGate {
	return TapGate{Threshold: threshold}
}

// Accept records a tap at now and reports whether it completes a double tap.
func (g *TapGate) Accept(now time.Duration) bool {
	gap := now - g.last
	primed := g.primed
	g.last = now
	g.primed = true
	return primed && gap < g.Threshold
}

// Reset forgets the previous tap.
func (g *TapGate) Reset() {
	g.last = 0
	g.primed = false
}
