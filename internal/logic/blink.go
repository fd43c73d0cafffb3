package logic

import "time"

// BlinkTimer is the periodic timer the blink controller arms and
// disarms. The real implementation delivers fires back to the run loop;
// tests use a fake that records calls.
type BlinkTimer interface {
	// Arm starts periodic firing at the given period, replacing any
	// previous arming.
	Arm(period time.Duration)
	// Disarm stops firing. Disarming an idle timer is a no-op.
	Disarm()
}

// Blink holds the blink state machine: Idle or Active. The LED level is
// tracked explicitly in ledOn rather than read back from hardware, so
// toggling has no hidden ordering dependency on the pin state.
type Blink struct {
	active bool
	ledOn  bool
	period time.Duration
}

// Start moves Idle->Active for the given press count. Returns the
// selected toggle period and true, or false when already active or the
// count is zero (both are no-ops).
func (b *Blink) Start(count int) (time.Duration, bool) {
	if b.active || count <= 0 {
		return 0, false
	}
	b.active = true
	b.ledOn = false
	b.period = BlinkPeriod(count)
	return b.period, true
}

// Toggle flips the tracked LED level and returns the new level.
// Toggling while idle keeps the level off.
func (b *Blink) Toggle() bool {
	if !b.active {
		return false
	}
	b.ledOn = !b.ledOn
	return b.ledOn
}

// Stop moves to Idle from any state.
func (b *Blink) Stop() {
	b.active = false
	b.ledOn = false
	b.period = 0
}

// Active reports whether the controller is in the Active state.
func (b *Blink) Active() bool { return b.active }

// Period returns the armed toggle period, zero when idle.
func (b *Blink) Period() time.Duration { return b.period }

// LEDOn returns the tracked LED level.
func (b *Blink) LEDOn() bool { return b.ledOn }
