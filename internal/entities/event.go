package entities

import "time"

type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventOrderPaymentUpdate EventType = "order.payment_updated"
	EventReviewSubmitted    EventType = "review.submitted"
	EventCartChanged        EventType = "cart.changed"
)

// Event is a domain notification. Key is used as the message key (order id or user id).
type Event struct {
	Type       EventType
	Key        string
	UserID     string
	OccurredAt time.Time
	Data       map[string]any
}
