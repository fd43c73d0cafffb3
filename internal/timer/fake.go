package timer

import "time"

// Fake is a test double recording Arm/Disarm calls. Fires are driven by
// the test via Fire.
type Fake struct {
	// Armed contains every period passed to Arm, in order.
	Armed []time.Duration

	// Disarms counts Disarm calls.
	Disarms int

	// OnFire, if set, receives fires from Fire.
	OnFire func(t time.Time)

	active bool
}

// NewFake creates a disarmed Fake.
func NewFake() *Fake {
	return &Fake{}
}

// Arm records the period.
func (f *Fake) Arm(period time.Duration) {
	f.Armed = append(f.Armed, period)
	f.active = true
}

// Disarm records the call.
func (f *Fake) Disarm() {
	f.Disarms++
	f.active = false
}

// Active reports whether the fake is armed.
func (f *Fake) Active() bool {
	return f.active
}

// Fire simulates one timer fire at t. Fires while disarmed are dropped,
// as the real timer's would be.
func (f *Fake) Fire(t time.Time) {
	if !f.active {
		return
	}
	if f.OnFire != nil {
		f.OnFire(t)
	}
}
