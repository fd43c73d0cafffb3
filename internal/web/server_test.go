package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/button-led/internal/logic"
	"github.com/sweeney/button-led/internal/status"
)

func newTestServer(t *testing.T) (*httptest.Server, *status.Tracker) {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := status.Config{
		Chip:        "gpiochip0",
		PinButton:   23,
		PinLED:      24,
		PollMs:      10,
		HeartbeatMs: 900000,
		Broker:      "tcp://192.168.1.200:1883",
		HTTPAddr:    ":8080",
	}
	tr := status.NewTracker(start, cfg)
	srv := New(":0", tr)
	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts, tr
}

func TestJSONEndpoint(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.Update(2, true, 2*time.Second, false, logic.PressCounts{Short: 2, Medium: 1})
	tr.SetMQTTConnected(true)

	resp, err := http.Get(ts.URL + "/index.json")
	if err != nil {
		t.Fatalf("GET /index.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var sj status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&sj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if sj.Status.PressCount != 2 {
		t.Errorf("press_count: got %d, want 2", sj.Status.PressCount)
	}
	if !sj.Status.Blinking || sj.Status.BlinkPeriodMs != 2000 {
		t.Errorf("blink: got blinking=%v period=%d, want active at 2000ms",
			sj.Status.Blinking, sj.Status.BlinkPeriodMs)
	}
	if !sj.Status.MQTT.Connected {
		t.Error("expected mqtt.connected=true")
	}
	if sj.Status.Config.PinButton != 23 {
		t.Errorf("config.pin_button: got %d, want 23", sj.Status.Config.PinButton)
	}
}

func TestIndexPage(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.Update(3, true, 3*time.Second, true, logic.PressCounts{Short: 3})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)

	if !strings.Contains(page, "ACTIVE (3000ms)") {
		t.Error("page must show the active blink period")
	}
	if !strings.Contains(page, "tcp://192.168.1.200:1883") {
		t.Error("page must show the broker address")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}
