// Package gpio provides button input and LED output with hardware
// abstraction. The real implementation uses the Linux GPIO character
// device. The fake implementations allow testing without hardware.
package gpio

import "time"

// EdgeHandler receives raw button edge notifications. down is true when
// the button went down. Handlers run on the GPIO event goroutine and
// must not block.
type EdgeHandler func(down bool, t time.Time)

// LED drives the feedback LED line.
type LED interface {
	// Set writes the LED level (true = lit).
	Set(on bool) error
}

// Defaults (BCM numbering).
const (
	DefaultChip      = "gpiochip0"
	DefaultPinButton = 23
	DefaultPinLED    = 24
)
