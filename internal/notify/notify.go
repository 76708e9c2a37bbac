// Package notify defines the lifecycle events the swap engine emits and the
// best-effort delivery machinery behind them.
//
// Delivery is fire-and-forget by contract: a dropped event is a degraded
// notification, never a workflow failure. Emit therefore never blocks and
// never returns an error — the async emitter drops on a full buffer and
// counts the drop so operators can see degradation on the metrics endpoint.
package notify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventType identifies a swap lifecycle event.
type EventType string

const (
	EventSwapCreated  EventType = "swap_request_created"
	EventSwapAccepted EventType = "swap_accepted"
	EventSwapRejected EventType = "swap_rejected"
	EventSwapDeleted  EventType = "swap_deleted"
)

// Event is the payload delivered to the external notifier: which swap, who
// was involved, and when the transition happened.
type Event struct {
	Type       EventType `json:"type"`
	SwapID     string    `json:"swap_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Emitter is the event sink consumed by the swap engine. Implementations must
// be safe for concurrent use and must not block the caller.
type Emitter interface {
	Emit(ev Event)
}

// droppedEvents counts events discarded because the notifier buffer was full.
var droppedEvents = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "swap_events_dropped_total",
	Help: "Total number of lifecycle events dropped by the async notifier.",
})

func init() {
	prometheus.MustRegister(droppedEvents)
}

// LogEmitter writes every event to the structured log. It is the default sink
// when no external notifier is configured.
type LogEmitter struct {
	// Logger defaults to the global zerolog logger when nil.
	Logger *zerolog.Logger
}

// Emit logs the event at info level.
func (e *LogEmitter) Emit(ev Event) {
	lg := e.Logger
	if lg == nil {
		lg = &log.Logger
	}
	lg.Info().
		Str("event", string(ev.Type)).
		Str("swap_id", ev.SwapID).
		Str("sender_id", ev.SenderID).
		Str("receiver_id", ev.ReceiverID).
		Time("occurred_at", ev.OccurredAt).
		Msg("swap event")
}

// AsyncEmitter decouples event delivery from the request path. Events are
// queued on a bounded channel and forwarded to the wrapped sink by a single
// goroutine; when the buffer is full the event is dropped and counted.
type AsyncEmitter struct {
	ch   chan Event
	done chan struct{}
}

// NewAsyncEmitter starts the forwarding goroutine. A buffer <= 0 is coerced
// to 64.
func NewAsyncEmitter(sink Emitter, buffer int) *AsyncEmitter {
	if buffer <= 0 {
		buffer = 64
	}
	a := &AsyncEmitter{
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(a.done)
		for ev := range a.ch {
			sink.Emit(ev)
		}
	}()
	return a
}

// Emit enqueues the event without blocking. Full buffer means the event is
// dropped, logged at warn, and counted in swap_events_dropped_total.
func (a *AsyncEmitter) Emit(ev Event) {
	select {
	case a.ch <- ev:
	default:
		droppedEvents.Inc()
		log.Warn().
			Str("event", string(ev.Type)).
			Str("swap_id", ev.SwapID).
			Msg("notifier buffer full, event dropped")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (a *AsyncEmitter) Close() {
	close(a.ch)
	<-a.done
}
