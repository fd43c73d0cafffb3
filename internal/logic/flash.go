package logic

import "time"

// Flash is the non-blocking confirmation flash after a short press.
// It self-terminates once FlashDuration has elapsed, checked each run
// loop pass. A new trigger while active restarts the window, so the LED
// stays lit continuously across overlapping short presses.
type Flash struct {
	active bool
	start  time.Time
}

// Trigger starts (or restarts) the flash window at now.
func (f *Flash) Trigger(now time.Time) {
	f.active = true
	f.start = now
}

// Expire reports whether the flash just ended. It returns true exactly
// once per window, at the first check at or past the deadline.
func (f *Flash) Expire(now time.Time) bool {
	if f.active && now.Sub(f.start) >= FlashDuration {
		f.active = false
		return true
	}
	return false
}

// Active reports whether the flash is currently lit.
func (f *Flash) Active() bool { return f.active }
