package mqtt

import (
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/sweeney/button-led/internal/logic"
)

// RealPublisher publishes to an actual MQTT broker. Messages sent while
// the broker is unreachable are held in a bounded pending queue and
// replayed on reconnect.
type RealPublisher struct {
	client paho.Client

	mu      sync.Mutex
	pending *pendingQueue
}

// pendingLimit bounds the reconnect queue. Presses are low-frequency,
// so this covers hours of disconnection.
const pendingLimit = 64

// NewRealPublisher creates a publisher for the given broker. Connection
// is established in the background with retry, so construction never
// blocks on an unreachable broker.
func NewRealPublisher(broker string) *RealPublisher {
	p := &RealPublisher{
		pending: newPendingQueue(pendingLimit),
	}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("button-led").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c paho.Client) {
			p.replayPending(c)
		})

	p.client = paho.NewClient(opts)
	p.client.Connect()
	return p
}

// Publish sends a button event to the MQTT broker.
func (p *RealPublisher) Publish(event logic.Event) error {
	payload, err := FormatPayload(event)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// QoS 0 (at-most-once), not retained
	return p.send(Topic, payload, 0, false)
}

// PublishSystem sends a system lifecycle event to the MQTT broker.
func (p *RealPublisher) PublishSystem(event SystemEvent) error {
	payload, err := FormatSystemPayload(event)
	if err != nil {
		return fmt.Errorf("format system payload: %w", err)
	}

	// QoS 1 (at-least-once) for lifecycle events - we want to ensure delivery
	return p.send(TopicSystem, payload, 1, event.Retained)
}

func (p *RealPublisher) send(topic string, payload []byte, qos byte, retained bool) error {
	if !p.client.IsConnected() {
		p.enqueue(topic, payload, qos, retained)
		return nil
	}

	token := p.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(5 * time.Second) {
		p.enqueue(topic, payload, qos, retained)
		return fmt.Errorf("publish timeout, queued for replay")
	}
	if err := token.Error(); err != nil {
		p.enqueue(topic, payload, qos, retained)
		return fmt.Errorf("publish: %w (queued for replay)", err)
	}
	return nil
}

func (p *RealPublisher) enqueue(topic string, payload []byte, qos byte, retained bool) {
	p.mu.Lock()
	p.pending.push(pendingMsg{topic: topic, payload: payload, qos: qos, retained: retained})
	p.mu.Unlock()
}

// replayPending runs on the paho connect handler goroutine.
func (p *RealPublisher) replayPending(c paho.Client) {
	p.mu.Lock()
	msgs := p.pending.drain()
	p.mu.Unlock()

	for _, m := range msgs {
		token := c.Publish(m.topic, m.qos, m.retained, m.payload)
		token.WaitTimeout(5 * time.Second)
	}
}

// IsConnected reports whether the broker connection is up.
func (p *RealPublisher) IsConnected() bool {
	return p.client.IsConnected()
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000) // 1 second timeout
	return nil
}
