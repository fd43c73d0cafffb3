package logic

import "time"

// Button filters raw button edges through a debounce window, measures
// press durations and raises the matching signal. HandleEdge runs on the
// GPIO event-handler goroutine, so it must not block or log; everything
// it shares with the run loop goes through Signals.
type Button struct {
	signals *Signals
	window  time.Duration

	lastEdge   time.Time // last accepted edge, accepted edges only
	pressStart time.Time
	pressed    bool
}

// NewButton creates a Button raising events on the given signal set.
func NewButton(signals *Signals) *Button {
	return &Button{
		signals: signals,
		window:  DebounceWindow,
	}
}

// HandleEdge processes one raw edge notification. down is true when the
// button went down (press start), false when it came up. Edges within
// the debounce window of the last accepted edge are discarded with no
// state change at all.
func (b *Button) HandleEdge(down bool, now time.Time) {
	if !b.lastEdge.IsZero() && now.Sub(b.lastEdge) < b.window {
		return
	}
	b.lastEdge = now

	if down {
		b.pressStart = now
		b.pressed = true
		return
	}

	// Release without a matching press start (e.g. the button was held
	// across startup) has nothing to measure.
	if !b.pressed {
		return
	}
	b.pressed = false

	switch Classify(now.Sub(b.pressStart)) {
	case KindShort:
		// Short presses are not counted while blinking; the press is
		// swallowed entirely, no signal either.
		if b.signals.BlinkActive() {
			return
		}
		b.signals.IncrementCounter()
		b.signals.RaiseShort()
	case KindMedium:
		b.signals.RaiseMedium()
	case KindLong:
		b.signals.RaiseStop()
	}
}

// Pressed reports whether a press is currently in progress.
func (b *Button) Pressed() bool {
	return b.pressed
}
