package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sweeney/button-led/internal/logic"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{Chip: "gpiochip0", PinButton: 23, PinLED: 24, PollMs: 10, Broker: "tcp://localhost:1883", HTTPAddr: ":8080"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.PinButton != 23 {
		t.Errorf("Config.PinButton: got %d, want 23", snap.Config.PinButton)
	}
	if snap.Blinking {
		t.Error("expected Blinking=false initially")
	}
	if snap.MQTTConnected {
		t.Error("expected MQTTConnected=false initially")
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.Update(2, true, 2*time.Second, false, logic.PressCounts{Short: 2, Medium: 1})

	snap := tr.Snapshot()
	if snap.PressCount != 2 {
		t.Errorf("PressCount: got %d, want 2", snap.PressCount)
	}
	if !snap.Blinking {
		t.Error("expected Blinking=true")
	}
	if snap.BlinkPeriod != 2*time.Second {
		t.Errorf("BlinkPeriod: got %v, want 2s", snap.BlinkPeriod)
	}
	if snap.Counts.Short != 2 || snap.Counts.Medium != 1 {
		t.Errorf("Counts: got %+v", snap.Counts)
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{StartTime: start, Now: start.Add(90 * time.Second)}
	if snap.Uptime() != 90*time.Second {
		t.Errorf("Uptime: got %v, want 90s", snap.Uptime())
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			tr.Update(n, n%2 == 0, time.Second, false, logic.PressCounts{Short: n})
		}(i)
		go func() {
			defer wg.Done()
			_ = tr.Snapshot()
		}()
	}
	wg.Wait()
}

func TestFormatJSON(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		PressCount:    3,
		Blinking:      true,
		BlinkPeriod:   3 * time.Second,
		StartTime:     start,
		Now:           start.Add(time.Hour),
		MQTTConnected: true,
		Counts:        logic.PressCounts{Short: 3, Medium: 1},
		Config:        Config{Broker: "tcp://localhost:1883", PinButton: 23},
	}

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(snap), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if sj.Status.PressCount != 3 {
		t.Errorf("press_count: got %d, want 3", sj.Status.PressCount)
	}
	if !sj.Status.Blinking || sj.Status.BlinkPeriodMs != 3000 {
		t.Errorf("blink: got blinking=%v period=%d", sj.Status.Blinking, sj.Status.BlinkPeriodMs)
	}
	if sj.Status.UptimeSeconds != 3600 {
		t.Errorf("uptime_seconds: got %d, want 3600", sj.Status.UptimeSeconds)
	}
	if sj.Status.Event != "" {
		t.Errorf("web JSON must not carry an event, got %q", sj.Status.Event)
	}
	if !sj.Status.MQTT.Connected {
		t.Error("expected mqtt.connected=true")
	}
}

func TestFormatStatusEvent(t *testing.T) {
	snap := Snapshot{
		StartTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Now:       time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC),
	}

	var sj StatusJSON
	if err := json.Unmarshal(FormatStatusEvent(snap, "SHUTDOWN", "SIGTERM"), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sj.Status.Event != "SHUTDOWN" {
		t.Errorf("event: got %q, want SHUTDOWN", sj.Status.Event)
	}
	if sj.Status.Reason != "SIGTERM" {
		t.Errorf("reason: got %q, want SIGTERM", sj.Status.Reason)
	}
}
