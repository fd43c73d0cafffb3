// Package logic contains pure business logic for button press classification
// and LED control. This package has NO external dependencies (no GPIO, MQTT,
// OS, or time.Sleep). Time is always injectable via time.Time parameters.
package logic

import "time"

// Press classification thresholds.
const (
	// ShortPressTime is the upper bound (exclusive) for a short press.
	ShortPressTime = 1500 * time.Millisecond
	// LongPressTime is the lower bound (inclusive) for a long press.
	LongPressTime = 4000 * time.Millisecond
)

// DebounceWindow is the minimum time between accepted button edges.
// Edges arriving sooner are mechanical bounce and are discarded.
const DebounceWindow = 50 * time.Millisecond

// FlashDuration is how long the confirmation flash stays lit after a
// short press.
const FlashDuration = 200 * time.Millisecond

// StopDelay is the deliberate pause between logging the stop and
// disarming the blink timer, so the shutdown message can flush first.
// Press input is low-frequency, so blocking the loop here is tolerated.
const StopDelay = 100 * time.Millisecond

// Kind is the classification of a completed press by its held duration.
type Kind string

const (
	KindShort  Kind = "SHORT"
	KindMedium Kind = "MEDIUM"
	KindLong   Kind = "LONG"
)

// EventType identifies an event produced by the controller.
type EventType string

const (
	// EventShortPress is a counted short press (confirmation flash started).
	EventShortPress EventType = "SHORT_PRESS"
	// EventBlinkStart is a medium press that actually started blinking.
	EventBlinkStart EventType = "BLINK_START"
	// EventStop is a long press: blinking disarmed, counter reset.
	EventStop EventType = "STOP"
)

// Event is a state change to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	// Count is the press counter at the time of the event
	// (the new count for SHORT_PRESS, the bucket selector for BLINK_START).
	Count int
	// Period is the blink toggle period (BLINK_START only).
	Period time.Duration
}

// PressCounts tracks how many presses of each kind were consumed since
// startup. Suppressed short presses (while blinking) are not counted.
type PressCounts struct {
	Short  int
	Medium int
	Long   int
}

// Heartbeat contains information for a periodic heartbeat event.
type Heartbeat struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counts    PressCounts
}

// BlinkPeriod maps the press counter to a blink toggle period.
// The mapping is three hand-coded buckets; every count of 3 or more
// falls into the largest bucket. Count must be > 0.
func BlinkPeriod(count int) time.Duration {
	switch {
	case count == 1:
		return 1000 * time.Millisecond
	case count == 2:
		return 2000 * time.Millisecond
	default:
		return 3000 * time.Millisecond
	}
}

// Classify buckets a press duration into short, medium or long.
func Classify(d time.Duration) Kind {
	switch {
	case d < ShortPressTime:
		return KindShort
	case d < LongPressTime:
		return KindMedium
	default:
		return KindLong
	}
}
