package structs

import (
	"photomagnet_server/structs/tables"
	"time"
)

const (
	EventOrderCreated   = "order.created"
	EventOrderConfirmed = "order.confirmed"
)

// OrderEvent is the value published on the order topic, keyed by OrderId.
type OrderEvent struct {
	Type       string        `json:"type"`
	OrderId    string        `json:"orderId"`
	OccurredAt time.Time     `json:"occurredAt"`
	Order      *tables.Order `json:"order"`
}
