// Package status provides a thread-safe status tracker for the
// button-led daemon. It is read by HTTP handlers and serialized into
// MQTT system events.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/button-led/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	Chip        string
	PinButton   int
	PinLED      int
	PollMs      int64
	HeartbeatMs int64
	Broker      string
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	PressCount    int
	Blinking      bool
	BlinkPeriod   time.Duration
	FlashActive   bool
	Counts        logic.PressCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the controller-derived state.
// Called from the run loop on every tick.
func (t *Tracker) Update(pressCount int, blinking bool, blinkPeriod time.Duration, flashActive bool, counts logic.PressCounts) {
	t.mu.Lock()
	t.snap.PressCount = pressCount
	t.snap.Blinking = blinking
	t.snap.BlinkPeriod = blinkPeriod
	t.snap.FlashActive = flashActive
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
