package order

import (
	"time"

	"sales/internal/core/domain/model/kernel"
)

// StateChanged is recorded every time an order enters a state, including
// Placed on creation. Events are collected on the aggregate and handed to a
// publisher by the application layer after the transaction commits.
type StateChanged struct {
	EventID    kernel.UUID `json:"eventId"`
	OrderID    int64       `json:"orderId"`
	Owner      string      `json:"owner"`
	From       string      `json:"from,omitempty"`
	To         string      `json:"to"`
	Lines      []LineItem  `json:"lines"`
	OccurredAt time.Time   `json:"occurredAt"`
}
