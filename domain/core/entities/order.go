package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos-backend/domain/core/valueobjects"
	apperrors "pos-backend/pkg/errors"
)

// OrderItem is a single line of an order. Name and unit price are captured
// at order time so later product edits do not rewrite order history.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a completed or in-flight sale. Total is fixed at creation.
type Order struct {
	ID         string                   `json:"id"`
	Number     string                   `json:"number"`
	CustomerID string                   `json:"customerId,omitempty"`
	Items      []OrderItem              `json:"items"`
	Total      decimal.Decimal          `json:"total"`
	Status     valueobjects.OrderStatus `json:"status"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

// NewOrder creates a pending order from its line items and computes the
// total. The total never changes afterwards; cancellation reverses effects
// computed from it.
func NewOrder(customerID string, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("order requires at least one item")
	}

	total := decimal.Zero
	for _, item := range items {
		if item.ProductID == "" {
			return nil, apperrors.NewValidationError("order item requires a product id")
		}
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("order item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, apperrors.NewValidationError("order item price cannot be negative")
		}
		total = total.Add(item.Subtotal())
	}

	now := time.Now()
	id := uuid.New()
	return &Order{
		ID:         id.String(),
		Number:     fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), id.String()[:8]),
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Status:     valueobjects.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// LoyaltyPoints returns the points this order earns: floor(total / 10).
func (o *Order) LoyaltyPoints() int {
	return int(o.Total.Div(decimal.NewFromInt(10)).Floor().IntPart())
}
