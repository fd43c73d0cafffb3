// Command button-led classifies presses of a single GPIO push button by
// held duration and drives a feedback LED: short presses flash and count,
// a medium press starts counter-paced blinking, a long press stops it.
// Events are published to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/button-led/internal/gpio"
	"github.com/sweeney/button-led/internal/logic"
	"github.com/sweeney/button-led/internal/mqtt"
	"github.com/sweeney/button-led/internal/status"
	"github.com/sweeney/button-led/internal/timer"
	"github.com/sweeney/button-led/internal/web"
)

func main() {
	chip := flag.String("chip", gpio.DefaultChip, "GPIO character device name")
	pinButton := flag.Int("pin-button", gpio.DefaultPinButton, "BCM pin number for the push button")
	pinLED := flag.Int("pin-led", gpio.DefaultPinLED, "BCM pin number for the feedback LED")
	poll := flag.Duration("poll", 10*time.Millisecond, "Run loop polling interval")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	printState := flag.Bool("print-state", false, "Print current button state and exit")

	flag.Parse()

	if err := run(*chip, *pinButton, *pinLED, *poll, *heartbeat, *broker, *httpAddr, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(chip string, pinButton, pinLED int, poll, heartbeat time.Duration, broker, httpAddr string, printState bool) error {
	signals := logic.NewSignals()
	button := logic.NewButton(signals)

	// Edge events are delivered on the gpiocdev event goroutine and go
	// straight into the debounce/classify path; everything it shares
	// with the run loop goes through signals.
	device, err := gpio.NewRealDevice(chip, pinButton, pinLED, button.HandleEdge)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer device.Close()

	// Print state mode
	if printState {
		pressed, err := device.Pressed()
		if err != nil {
			return fmt.Errorf("read button: %w", err)
		}
		if pressed {
			fmt.Println("button: DOWN")
		} else {
			fmt.Println("button: UP")
		}
		return nil
	}

	// Initialize MQTT
	publisher := mqtt.NewRealPublisher(broker)
	defer publisher.Close()

	startTime := time.Now()
	tracker := status.NewTracker(startTime, status.Config{
		Chip:        chip,
		PinButton:   pinButton,
		PinLED:      pinLED,
		PollMs:      poll.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		Broker:      broker,
		HTTPAddr:    httpAddr,
	})

	blinkTimer := timer.New()
	ctrl := logic.NewController(signals, blinkTimer, startTime)
	ctrl.SetLED = func(on bool) {
		if err := device.Set(on); err != nil {
			log.Printf("led write error: %v", err)
		}
	}
	ctrl.Delay = time.Sleep
	ctrl.Logf = log.Printf

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("system ready: chip=%s button=%d led=%d poll=%v broker=%s heartbeat=%v",
		chip, pinButton, pinLED, poll, broker, heartbeat)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(ctrl, publisher, publisher, tracker, heartbeat, time.Now, ticker.C, blinkTimer.Fires(), sigCh)
}

func runLoop(ctrl *logic.Controller, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, fires <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName(s),
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", event.Reason)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case t := <-fires:
			// Blink toggle. Routed through the loop so all LED writes
			// are serialized here.
			ctrl.TimerFired(t)

		case <-tick:
			t := now()
			for _, event := range ctrl.Step(t) {
				log.Printf("event: %s count=%d period=%v", event.Type, event.Count, event.Period)
				if err := publisher.Publish(event); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}
			}

			if hb := ctrl.CheckHeartbeat(t, heartbeat); hb != nil {
				log.Printf("heartbeat: uptime=%v short=%d medium=%d long=%d",
					hb.Uptime, hb.Counts.Short, hb.Counts.Medium, hb.Counts.Long)

				hbEvent := mqtt.SystemEvent{
					Timestamp: hb.Timestamp,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					tracker.Update(ctrl.PressCount(), ctrl.Blinking(), ctrl.BlinkPeriod(), ctrl.FlashActive(), ctrl.Counts())
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(ctrl.PressCount(), ctrl.Blinking(), ctrl.BlinkPeriod(), ctrl.FlashActive(), ctrl.Counts())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}
