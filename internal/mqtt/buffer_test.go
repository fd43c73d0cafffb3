package mqtt

import (
	"fmt"
	"testing"
)

func TestPendingQueueFIFO(t *testing.T) {
	q := newPendingQueue(4)

	for i := 0; i < 3; i++ {
		q.push(pendingMsg{topic: Topic, payload: []byte(fmt.Sprintf("m%d", i))})
	}
	if q.len() != 3 {
		t.Fatalf("len: got %d, want 3", q.len())
	}

	msgs := q.drain()
	if len(msgs) != 3 {
		t.Fatalf("drained: got %d, want 3", len(msgs))
	}
	for i, m := range msgs {
		if string(m.payload) != fmt.Sprintf("m%d", i) {
			t.Errorf("msg %d: got %s, want m%d (oldest first)", i, m.payload, i)
		}
	}

	if q.len() != 0 {
		t.Errorf("len after drain: got %d, want 0", q.len())
	}
	if q.drain() != nil {
		t.Error("draining an empty queue must return nil")
	}
}

func TestPendingQueueDropsOldestWhenFull(t *testing.T) {
	q := newPendingQueue(2)

	q.push(pendingMsg{payload: []byte("m0")})
	q.push(pendingMsg{payload: []byte("m1")})
	q.push(pendingMsg{payload: []byte("m2")})

	if q.len() != 2 {
		t.Fatalf("len: got %d, want 2", q.len())
	}

	msgs := q.drain()
	if string(msgs[0].payload) != "m1" || string(msgs[1].payload) != "m2" {
		t.Errorf("got [%s %s], want [m1 m2]", msgs[0].payload, msgs[1].payload)
	}
}

func TestPendingQueuePreservesMessageFields(t *testing.T) {
	q := newPendingQueue(2)
	q.push(pendingMsg{topic: TopicSystem, payload: []byte("x"), qos: 1, retained: true})

	m := q.drain()[0]
	if m.topic != TopicSystem || m.qos != 1 || !m.retained {
		t.Errorf("fields not preserved: %+v", m)
	}
}
