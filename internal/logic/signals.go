package logic

import "sync/atomic"

// Signals is the handoff between the edge-handler goroutine (producer)
// and the run loop (consumer). Each signal is raised by the producer
// exactly once per occurrence and consumed at most once by the consumer
// via compare-and-swap; the producer never clears and the consumer never
// raises.
//
// The press counter is incremented strictly before the short signal is
// raised, so a consumer that observes the signal also observes the new
// count. BlinkActive is the consumer-owned blink state mirrored back for
// the producer's short-press suppression check.
type Signals struct {
	short  atomic.Bool
	medium atomic.Bool
	stop   atomic.Bool

	counter     atomic.Int32
	blinkActive atomic.Bool
}

// NewSignals creates an empty signal set.
func NewSignals() *Signals {
	return &Signals{}
}

// RaiseShort marks a counted short press. Producer only.
func (s *Signals) RaiseShort() { s.short.Store(true) }

// RaiseMedium marks a medium press. Producer only.
func (s *Signals) RaiseMedium() { s.medium.Store(true) }

// RaiseStop marks a long press. Producer only.
func (s *Signals) RaiseStop() { s.stop.Store(true) }

// TakeShort consumes a pending short signal. Consumer only.
func (s *Signals) TakeShort() bool { return s.short.CompareAndSwap(true, false) }

// TakeMedium consumes a pending medium signal. Consumer only.
func (s *Signals) TakeMedium() bool { return s.medium.CompareAndSwap(true, false) }

// TakeStop consumes a pending stop signal. Consumer only.
func (s *Signals) TakeStop() bool { return s.stop.CompareAndSwap(true, false) }

// IncrementCounter adds one qualifying short press and returns the new
// count. Producer only.
func (s *Signals) IncrementCounter() int {
	return int(s.counter.Add(1))
}

// Counter returns the current press count.
func (s *Signals) Counter() int {
	return int(s.counter.Load())
}

// ResetCounter zeroes the press count. Consumer only (stop path).
func (s *Signals) ResetCounter() {
	s.counter.Store(0)
}

// SetBlinkActive publishes the blink state for the producer's
// suppression check. Consumer only.
func (s *Signals) SetBlinkActive(active bool) {
	s.blinkActive.Store(active)
}

// BlinkActive reports whether blinking is active.
func (s *Signals) BlinkActive() bool {
	return s.blinkActive.Load()
}
