package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOrderCreated is the queue topic published when an Order is persisted.
const TopicOrderCreated = "orders.created"

// EventTypeOrderCreated is the eventType discriminator carried on the wire.
const EventTypeOrderCreated = "OrderCreated"

// OrderCreatedEvent is the wire payload for TopicOrderCreated. It carries no
// order data beyond the identifier — consumers look the order up themselves,
// so a stale or duplicated event can never overwrite fresher state.
//
// Wire format: {"orderId": "<uuid>", "eventType": "OrderCreated", "timestamp": "<RFC3339>"}
type OrderCreatedEvent struct {
	OrderID   uuid.UUID `json:"orderId"`
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent builds the event for the given order id, stamped now.
func NewOrderCreatedEvent(orderID uuid.UUID) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderID:   orderID,
		EventType: EventTypeOrderCreated,
		Timestamp: time.Now().UTC(),
	}
}
