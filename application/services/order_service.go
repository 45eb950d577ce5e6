package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-backend/application/ports"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/core/valueobjects"
	"pos-backend/domain/events"
	apperrors "pos-backend/pkg/errors"
)

// OrderService manages orders. Creating an order publishes OrderCreated;
// inventory and loyalty effects are reactions owned by the integrator.
type OrderService struct {
	orders    ports.OrderRepository
	products  ports.ProductRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates an order service.
func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, publisher ports.EventPublisher, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the fields for a new order.
type CreateOrderInput struct {
	CustomerID string
	Items      []OrderItemInput
}

// Create builds an order from the current catalog (capturing product name
// and price per line), persists it, and publishes OrderCreated.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*entities.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidationError("order requires at least one item")
	}

	items := make([]entities.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, apperrors.Wrapf(err, "order line for product %s", line.ProductID)
		}
		if !product.Active {
			return nil, apperrors.NewConflictError("product " + product.Name + " is not sellable")
		}
		items = append(items, entities.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		})
	}

	order, err := entities.NewOrder(input.CustomerID, items)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Wrap(err, "save order")
	}

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("number", order.Number),
		zap.String("total", order.Total.String()),
	)
	s.publisher.Publish(ctx, events.NewOrderCreated(order.ID, order.CustomerID, order.Total))
	return order, nil
}

// Get returns an order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*entities.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]*entities.Order, error) {
	return s.orders.FindAll(ctx)
}

// UpdateStatus moves an order to a new status, enforcing the lifecycle
// transitions, and publishes OrderStatusChanged.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, newStatus valueobjects.OrderStatus) (*entities.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if oldStatus == newStatus {
		return order, nil
	}
	if !oldStatus.CanTransitionTo(newStatus) {
		return nil, apperrors.NewConflictError(
			"order cannot move from " + oldStatus.String() + " to " + newStatus.String())
	}

	order.Status = newStatus
	order.UpdatedAt = now()
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Wrap(err, "save order")
	}

	s.publisher.Publish(ctx, events.NewOrderStatusChanged(order.ID, oldStatus.String(), newStatus.String()))
	return order, nil
}

// SalesSummary aggregates non-cancelled orders in [from, to].
type SalesSummary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	OrderCount int             `json:"orderCount"`
	ItemsSold  int             `json:"itemsSold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Summarize computes the sales summary for a date range.
func (s *OrderService) Summarize(ctx context.Context, from, to time.Time) (*SalesSummary, error) {
	orders, err := s.orders.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, apperrors.Wrap(err, "load orders for summary")
	}

	summary := &SalesSummary{From: from, To: to, Revenue: decimal.Zero}
	for _, order := range orders {
		if order.Status == valueobjects.OrderStatusCancelled {
			continue
		}
		summary.OrderCount++
		summary.Revenue = summary.Revenue.Add(order.Total)
		for _, item := range order.Items {
			summary.ItemsSold += item.Quantity
		}
	}
	return summary, nil
}
