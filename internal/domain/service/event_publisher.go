package service

import (
	"context"
	"time"
)

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // constants.EventOrderCreated or constants.EventOrderStatusChanged
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	ShopID     string    `json:"shop_id"`
	ShopName   string    `json:"shop_name,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prev_status,omitempty"`
	TotalPrice string    `json:"total_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
