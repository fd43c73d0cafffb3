//go:build !linux

package gpio

import "errors"

// RealDevice is not available on non-Linux platforms.
type RealDevice struct{}

// NewRealDevice returns an error on non-Linux platforms.
func NewRealDevice(chipName string, pinButton, pinLED int, handler EdgeHandler) (*RealDevice, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (d *RealDevice) Set(on bool) error {
	return errors.New("gpio: not supported")
}

// Pressed is not implemented on non-Linux platforms.
func (d *RealDevice) Pressed() (bool, error) {
	return false, errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *RealDevice) Close() error {
	return nil
}
