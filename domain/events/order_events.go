package events

import "github.com/shopspring/decimal"

// OrderCreated is published after an order is persisted. Reactions load the
// full order by id; the payload carries only what subscribers filter on.
type OrderCreated struct {
	BaseEvent
	OrderID    string          `json:"orderId"`
	CustomerID string          `json:"customerId,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// NewOrderCreated creates an OrderCreated event.
func NewOrderCreated(orderID, customerID string, total decimal.Decimal) *OrderCreated {
	return &OrderCreated{
		BaseEvent:  NewBaseEvent(TypeOrderCreated, EntityOrder, orderID),
		OrderID:    orderID,
		CustomerID: customerID,
		Total:      total,
	}
}

// OrderStatusChanged is published after an order moves to a new status.
type OrderStatusChanged struct {
	BaseEvent
	OrderID   string `json:"orderId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

// NewOrderStatusChanged creates an OrderStatusChanged event.
func NewOrderStatusChanged(orderID, oldStatus, newStatus string) *OrderStatusChanged {
	return &OrderStatusChanged{
		BaseEvent: NewBaseEvent(TypeOrderStatusChanged, EntityOrder, orderID),
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}
