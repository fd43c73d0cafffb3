package logic

import "time"

// Controller is the serialized consumer side of the system. Step runs on
// the run loop, consumes pending signals and drives the blink controller
// and the flasher. Hardware and OS interactions go through the func
// fields, which default to no-ops so tests only set what they assert on.
type Controller struct {
	signals *Signals
	timer   BlinkTimer
	blink   Blink
	flash   Flash

	counts        PressCounts
	startTime     time.Time
	lastHeartbeat time.Time

	// SetLED writes the LED level. All writes happen on the run loop.
	SetLED func(on bool)
	// Delay blocks the run loop; used only for the deliberate pause
	// before disarming on stop. Tests leave it a no-op.
	Delay func(d time.Duration)
	// Logf emits a human-readable status line.
	Logf func(format string, v ...interface{})
}

// NewController creates a Controller consuming the given signals and
// owning the given blink timer. startTime is used for heartbeat uptime.
func NewController(signals *Signals, timer BlinkTimer, startTime time.Time) *Controller {
	return &Controller{
		signals:       signals,
		timer:         timer,
		startTime:     startTime,
		lastHeartbeat: startTime,
		SetLED:        func(bool) {},
		Delay:         func(time.Duration) {},
		Logf:          func(string, ...interface{}) {},
	}
}

// Step consumes pending signals and advances the flash window. It
// returns the events that should be published. Stop is handled first,
// so a stop raised together with other signals wins.
func (c *Controller) Step(now time.Time) []Event {
	var events []Event

	if c.signals.TakeStop() {
		c.counts.Long++
		c.Logf("stop: disarming blink, resetting counter")
		// Let the message flush before the timer goes away.
		c.Delay(StopDelay)
		c.timer.Disarm()
		c.blink.Stop()
		c.signals.SetBlinkActive(false)
		c.signals.ResetCounter()
		c.SetLED(false)
		events = append(events, Event{Timestamp: now, Type: EventStop})
	}

	if c.signals.TakeShort() {
		c.counts.Short++
		n := c.signals.Counter()
		c.Logf("short press number: %d", n)
		c.SetLED(true)
		c.flash.Trigger(now)
		events = append(events, Event{Timestamp: now, Type: EventShortPress, Count: n})
	}

	if c.flash.Expire(now) {
		c.SetLED(false)
	}

	if c.signals.TakeMedium() {
		c.counts.Medium++
		n := c.signals.Counter()
		if period, ok := c.blink.Start(n); ok {
			c.Logf("medium press: blinking with count %d, period %v", n, period)
			c.SetLED(false)
			c.signals.SetBlinkActive(true)
			c.timer.Arm(period)
			events = append(events, Event{Timestamp: now, Type: EventBlinkStart, Count: n, Period: period})
		}
	}

	return events
}

// TimerFired handles one blink timer fire: toggle the tracked level and
// write it out. Fires that race a stop (already disarmed) are dropped.
func (c *Controller) TimerFired(now time.Time) {
	if !c.blink.Active() {
		return
	}
	c.SetLED(c.blink.Toggle())
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed
// since the last heartbeat (or startup). Returns nil if the interval has
// not elapsed or if interval is <= 0 (disabled).
func (c *Controller) CheckHeartbeat(now time.Time, interval time.Duration) *Heartbeat {
	if interval <= 0 {
		return nil
	}
	if now.Sub(c.lastHeartbeat) < interval {
		return nil
	}
	c.lastHeartbeat = now
	return &Heartbeat{
		Timestamp: now,
		Uptime:    now.Sub(c.startTime),
		Counts:    c.counts,
	}
}

// PressCount returns the current press counter.
func (c *Controller) PressCount() int { return c.signals.Counter() }

// Blinking reports whether the blink controller is Active.
func (c *Controller) Blinking() bool { return c.blink.Active() }

// BlinkPeriod returns the armed toggle period, zero when idle.
func (c *Controller) BlinkPeriod() time.Duration { return c.blink.Period() }

// FlashActive reports whether the confirmation flash is lit.
func (c *Controller) FlashActive() bool { return c.flash.Active() }

// Counts returns the per-kind consumed press counts.
func (c *Controller) Counts() PressCounts { return c.counts }
