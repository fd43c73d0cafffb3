package gpio

import "time"

// FakeLED is a test double that records LED writes.
type FakeLED struct {
	// On is the current level.
	On bool

	// Writes contains every level written, in order.
	Writes []bool

	// SetError, if set, will be returned by Set.
	SetError error
}

// NewFakeLED creates a FakeLED.
func NewFakeLED() *FakeLED {
	return &FakeLED{}
}

// Set records the level.
func (f *FakeLED) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.On = on
	f.Writes = append(f.Writes, on)
	return nil
}

// FakeButton feeds scripted edges into an EdgeHandler, standing in for
// the hardware edge interrupt.
type FakeButton struct {
	handler EdgeHandler

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeButton creates a FakeButton delivering edges to handler.
func NewFakeButton(handler EdgeHandler) *FakeButton {
	return &FakeButton{handler: handler}
}

// Edge delivers a single raw edge.
func (f *FakeButton) Edge(down bool, t time.Time) {
	f.handler(down, t)
}

// Press delivers a clean down/up pair held from downAt to upAt.
func (f *FakeButton) Press(downAt, upAt time.Time) {
	f.handler(true, downAt)
	f.handler(false, upAt)
}

// Close marks the button as closed.
func (f *FakeButton) Close() error {
	f.Closed = true
	return nil
}
