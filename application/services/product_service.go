// Package services implements the feature-facing CRUD services. Services
// own their repositories and publish domain events after successful
// mutations; cross-feature effects are wired by the integrator, not here.
package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-backend/application/ports"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/events"
	apperrors "pos-backend/pkg/errors"
)

// ProductService manages the product catalog and stock levels.
type ProductService struct {
	products  ports.ProductRepository
	publisher ports.EventPublisher
	logger    *zap.Logger

	lowStockThreshold int
}

// NewProductService creates a product service. threshold is the default
// low-stock threshold applied to new products.
func NewProductService(products ports.ProductRepository, publisher ports.EventPublisher, threshold int, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if threshold <= 0 {
		threshold = entities.DefaultLowStockThreshold
	}
	return &ProductService{
		products:          products,
		publisher:         publisher,
		logger:            logger,
		lowStockThreshold: threshold,
	}
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name              string
	SKU               string
	Price             decimal.Decimal
	Quantity          int
	CategoryID        string
	LowStockThreshold int
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*entities.Product, error) {
	product, err := entities.NewProduct(input.Name, input.SKU, input.Price, input.Quantity, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if input.LowStockThreshold > 0 {
		product.LowStockThreshold = input.LowStockThreshold
	} else {
		product.LowStockThreshold = s.lowStockThreshold
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Wrap(err, "save product")
	}
	s.publisher.Publish(ctx, events.NewProductCreated(product.ID))
	return product, nil
}

// UpdateProductInput carries optional field updates; nil means unchanged.
type UpdateProductInput struct {
	Name              *string
	Price             *decimal.Decimal
	CategoryID        *string
	LowStockThreshold *int
	Active            *bool
}

// Update edits product fields. Stock quantity changes go through
// AdjustQuantity so inventory events fire.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*entities.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.NewValidationError("product price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, apperrors.NewValidationError("low stock threshold cannot be negative")
		}
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.UpdatedAt = now()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Wrap(err, "save product")
	}
	s.publisher.Publish(ctx, events.NewProductUpdated(product.ID))
	return product, nil
}

// Get returns a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*entities.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]*entities.Product, error) {
	return s.products.FindAll(ctx)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewProductDeleted(id))
	return nil
}

// AdjustQuantity changes a product's stock by delta (negative for sales)
// and publishes the inventory change. Quantity may go negative on oversell;
// the out-of-stock reaction covers that case.
func (s *ProductService) AdjustQuantity(ctx context.Context, id string, delta int) (*entities.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldQuantity := product.Quantity
	product.Quantity += delta
	product.UpdatedAt = now()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Wrap(err, "save product")
	}

	s.logger.Debug("stock adjusted",
		zap.String("productId", product.ID),
		zap.Int("delta", delta),
		zap.Int("quantity", product.Quantity),
	)
	s.publisher.Publish(ctx, events.NewProductInventoryChanged(product.ID, oldQuantity, product.Quantity))
	return product, nil
}
