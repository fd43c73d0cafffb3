// Package timer provides the periodic blink timer. The real
// implementation runs a ticker goroutine and delivers fires on a
// channel, so LED writes stay serialized on the run loop; the fake
// lets tests fire by hand.
package timer

import (
	"sync"
	"time"
)

// Quantum is the timer's configurable granularity. Periods are rounded
// up to the next multiple; all blink bucket periods are exact multiples
// already.
const Quantum = 500 * time.Millisecond

// Quantize rounds a period up to the next Quantum multiple, with a
// floor of one Quantum.
func Quantize(period time.Duration) time.Duration {
	if period <= Quantum {
		return Quantum
	}
	n := (period + Quantum - 1) / Quantum
	return n * Quantum
}

// Periodic is a re-armable periodic timer. Arm replaces any previous
// arming; Disarm stops firing immediately. Fires are delivered on a
// buffered channel and dropped when the consumer is behind, so a slow
// run loop can never back up the ticker goroutine.
type Periodic struct {
	mu   sync.Mutex
	stop chan struct{}
	fire chan time.Time
}

// New creates a disarmed Periodic.
func New() *Periodic {
	return &Periodic{
		fire: make(chan time.Time, 1),
	}
}

// Fires returns the channel fires are delivered on.
func (p *Periodic) Fires() <-chan time.Time {
	return p.fire
}

// Arm starts periodic firing at the quantized period.
func (p *Periodic) Arm(period time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.disarmLocked()
	stop := make(chan struct{})
	p.stop = stop

	go func() {
		t := time.NewTicker(Quantize(period))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-t.C:
				select {
				case p.fire <- now:
				default:
				}
			}
		}
	}()
}

// Disarm stops firing. Disarming an idle timer is a no-op.
func (p *Periodic) Disarm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disarmLocked()
}

func (p *Periodic) disarmLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// Armed reports whether the timer is currently armed.
func (p *Periodic) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}
