package mqtt

import "log"

// pendingMsg stores a serialized MQTT message for replay after reconnection.
type pendingMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// pendingQueue is a bounded FIFO holding messages while the broker is
// unreachable. When full, the oldest message is dropped; press events
// lose value quickly, so newest-wins is the right policy here.
// Not safe for concurrent use — caller must synchronize.
type pendingQueue struct {
	msgs    []pendingMsg
	limit   int
	dropped int // messages dropped since the last drain
}

func newPendingQueue(limit int) *pendingQueue {
	return &pendingQueue{limit: limit}
}

func (q *pendingQueue) push(msg pendingMsg) {
	if len(q.msgs) == q.limit {
		if q.dropped == 0 {
			log.Printf("mqtt: pending queue full (%d messages), dropping oldest", q.limit)
		}
		q.dropped++
		copy(q.msgs, q.msgs[1:])
		q.msgs = q.msgs[:len(q.msgs)-1]
	}
	q.msgs = append(q.msgs, msg)
}

// drain returns the queued messages oldest-first and empties the queue.
func (q *pendingQueue) drain() []pendingMsg {
	if len(q.msgs) == 0 {
		return nil
	}
	out := q.msgs
	q.msgs = nil
	q.dropped = 0
	return out
}

func (q *pendingQueue) len() int {
	return len(q.msgs)
}
