// Package events provides the in-process publisher the registry uses to
// announce piece lifecycle changes.
package events

import "sync"

// EventType represents the type of event
type EventType string

// Lifecycle events published by the registry.
const (
	EventPieceRegistered EventType = "PIECE_REGISTERED"
	EventPieceReleased   EventType = "PIECE_RELEASED"
	EventPieceMoved      EventType = "PIECE_MOVED"
)

// Event represents a single piece lifecycle change.
type Event struct {
	Type    EventType
	PieceID string // Optional, can be empty for events not tied to one piece
	Payload interface{}
}

// Handler is a function that processes events
type Handler func(event Event)

// Publisher is the central event publisher
type Publisher struct {
	mu          sync.RWMutex
	subscribers map[EventType][]Handler
}

// NewPublisher creates a new event publisher
func NewPublisher() *Publisher {
	return &Publisher{
		subscribers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (p *Publisher) Subscribe(eventType EventType, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers[eventType] = append(p.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for all event types
func (p *Publisher) SubscribeAll(handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Special event type for "all events"
	p.subscribers["*"] = append(p.subscribers["*"], handler)
}

// Publish delivers an event to its type's subscribers and then to the
// "all events" handlers. Handlers run synchronously in subscription order,
// so an event is fully observed before the caller's next operation begins.
func (p *Publisher) Publish(event Event) {
	p.mu.RLock()
	handlers := append([]Handler(nil), p.subscribers[event.Type]...)
	handlers = append(handlers, p.subscribers["*"]...)
	p.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
