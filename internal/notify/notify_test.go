package notify

import (
	"sync"
	"testing"
	"time"
)

// captureSink records emitted events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureSink) Emit(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureSink) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func TestAsyncEmitter_DeliversInOrder(t *testing.T) {
	sink := &captureSink{}
	a := NewAsyncEmitter(sink, 8)

	want := []EventType{EventSwapCreated, EventSwapAccepted, EventSwapRejected, EventSwapDeleted}
	for _, typ := range want {
		a.Emit(Event{Type: typ, SwapID: "s1", OccurredAt: time.Now().UTC()})
	}
	a.Close() // drains the queue

	got := sink.snapshot()
	if len(got) != len(want) {
		t.Fatalf("delivered %d events, want %d", len(got), len(want))
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Fatalf("event %d = %s, want %s", i, got[i].Type, typ)
		}
	}
}

func TestAsyncEmitter_DropsWhenFull(t *testing.T) {
	// A sink that blocks until released, so the buffer fills up.
	release := make(chan struct{})
	blocked := blockingSink{release: release}
	a := NewAsyncEmitter(&blocked, 1)

	// First event is picked up by the forwarding goroutine (blocks in sink),
	// second fills the buffer, the rest must be dropped without blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			a.Emit(Event{Type: EventSwapCreated, SwapID: "s"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Emit blocked; must be fire-and-forget")
	}

	close(release)
	a.Close()
}

type blockingSink struct {
	release chan struct{}
}

func (b *blockingSink) Emit(Event) { <-b.release }

func TestLogEmitter_NilLogger(t *testing.T) {
	// Must not panic with the zero value.
	e := &LogEmitter{}
	e.Emit(Event{Type: EventSwapDeleted, SwapID: "x", OccurredAt: time.Now()})
}
