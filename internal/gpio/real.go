//go:build linux

package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// RealDevice owns the button and LED lines on actual hardware.
type RealDevice struct {
	chip   *gpiocdev.Chip
	button *gpiocdev.Line
	led    *gpiocdev.Line
}

// NewRealDevice opens the chip, requests the button line with edge
// detection and the LED line as output, and routes edge events to
// handler. The button is wired active-low (pull-up with the switch to
// ground), so a falling edge is button-down.
func NewRealDevice(chipName string, pinButton, pinLED int, handler EdgeHandler) (*RealDevice, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	button, err := chip.RequestLine(pinButton,
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			handler(evt.Type == gpiocdev.LineEventFallingEdge, time.Now())
		}))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pinButton, err)
	}

	led, err := chip.RequestLine(pinLED, gpiocdev.AsOutput(0))
	if err != nil {
		button.Close()
		chip.Close()
		return nil, fmt.Errorf("request led pin %d: %w", pinLED, err)
	}

	return &RealDevice{
		chip:   chip,
		button: button,
		led:    led,
	}, nil
}

// Set writes the LED level.
func (d *RealDevice) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := d.led.SetValue(v); err != nil {
		return fmt.Errorf("write led: %w", err)
	}
	return nil
}

// Pressed reads the current button level. Raw low = pressed (active-low
// wiring).
func (d *RealDevice) Pressed() (bool, error) {
	raw, err := d.button.Value()
	if err != nil {
		return false, fmt.Errorf("read button: %w", err)
	}
	return raw == 0, nil
}

// Close turns the LED off and releases GPIO resources.
func (d *RealDevice) Close() error {
	var errs []error

	if d.led != nil {
		// Leave the LED dark rather than frozen at its last level.
		if err := d.led.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear led: %w", err))
		}
		if err := d.led.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close led: %w", err))
		}
	}
	if d.button != nil {
		if err := d.button.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button: %w", err))
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
