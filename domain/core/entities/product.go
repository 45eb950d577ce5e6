package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "pos-backend/pkg/errors"
)

// DefaultLowStockThreshold applies when a product is created without an
// explicit threshold.
const DefaultLowStockThreshold = 10

// Product is a sellable item with tracked stock.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	CategoryID        string          `json:"categoryId,omitempty"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewProduct creates a product, validating its fields.
func NewProduct(name, sku string, price decimal.Decimal, quantity int, categoryID string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("product name is required")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, apperrors.NewValidationError("product sku is required")
	}
	if price.IsNegative() {
		return nil, apperrors.NewValidationError("product price cannot be negative")
	}
	if quantity < 0 {
		return nil, apperrors.NewValidationError("product quantity cannot be negative")
	}

	now := time.Now()
	return &Product{
		ID:                uuid.New().String(),
		Name:              name,
		SKU:               strings.TrimSpace(sku),
		Price:             price,
		Quantity:          quantity,
		LowStockThreshold: DefaultLowStockThreshold,
		CategoryID:        categoryID,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// IsLowStock reports whether the product is in stock but at or below its
// low-stock threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.LowStockThreshold
}

// IsOutOfStock reports whether the product has no remaining stock.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity <= 0
}
