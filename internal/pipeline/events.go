package pipeline

import (
	"sync"
	"time"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

// Event is a sequenced status notification for one processing run.
type Event struct {
	Seq       int64         `json:"seq"`
	Timestamp time.Time     `json:"timestamp"`
	RunID     string        `json:"runId"`
	Status    domain.Status `json:"status"`
	Message   string        `json:"message,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// EventBus keeps a bounded history of events and forwards them to
// subscribers without blocking the publisher.
type EventBus struct {
	mu        sync.RWMutex
	nextSeq   int64
	maxEvents int
	events    []Event
	subs      []chan Event
}

// NewEventBus creates a bus retaining at most maxEvents notifications.
func NewEventBus(maxEvents int) *EventBus {
	if maxEvents <= 0 {
		maxEvents = 200
	}
	return &EventBus{
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
	}
}

// Publish assigns sequence and timestamp, stores the event, and pushes it to
// subscribers. A subscriber with a full channel misses the event rather than
// stalling the pipeline.
func (b *EventBus) Publish(event Event) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	event.Seq = b.nextSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	b.events = append(b.events, event)
	if len(b.events) > b.maxEvents {
		trim := len(b.events) - b.maxEvents
		b.events = append([]Event(nil), b.events[trim:]...)
	}

	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}

	return event
}

// Subscribe returns a channel receiving future events.
func (b *EventBus) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	return ch
}

// Unsubscribe removes a channel obtained from Subscribe.
func (b *EventBus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if (<-chan Event)(sub) == ch {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Since returns retained events with sequence strictly greater than seq.
func (b *EventBus) Since(seq int64) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.events) == 0 {
		return nil
	}

	out := make([]Event, 0, len(b.events))
	for _, event := range b.events {
		if event.Seq > seq {
			out = append(out, event)
		}
	}
	return out
}
