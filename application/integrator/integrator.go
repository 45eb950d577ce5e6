// Package integrator wires the fixed set of cross-feature reactions: order
// lifecycle to inventory and loyalty, inventory levels to stock alerts,
// loyalty balances to membership tiers. Reactions are best-effort derived
// state propagation: errors are logged, never retried, and never surface
// to the request that published the triggering event.
package integrator

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"pos-backend/application/services"
	"pos-backend/domain/core/valueobjects"
	"pos-backend/domain/events"
	"pos-backend/infrastructure/eventbus"
	apperrors "pos-backend/pkg/errors"
)

// ServiceIntegrator owns the cross-feature event subscriptions.
type ServiceIntegrator struct {
	bus       *eventbus.Bus
	orders    *services.OrderService
	products  *services.ProductService
	customers *services.CustomerService
	logger    *zap.Logger

	once sync.Once
	subs []*eventbus.Subscription
}

// New creates an integrator. Call Initialize to register its reactions.
func New(bus *eventbus.Bus, orders *services.OrderService, products *services.ProductService, customers *services.CustomerService, logger *zap.Logger) *ServiceIntegrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceIntegrator{
		bus:       bus,
		orders:    orders,
		products:  products,
		customers: customers,
		logger:    logger,
	}
}

// Initialize registers the reaction handlers. Idempotent: calling it twice
// never double-registers.
func (si *ServiceIntegrator) Initialize() {
	si.once.Do(func() {
		si.subs = []*eventbus.Subscription{
			si.bus.Subscribe(events.TypeOrderCreated, si.handleOrderCreated),
			si.bus.Subscribe(events.TypeOrderStatusChanged, si.handleOrderStatusChanged),
			si.bus.Subscribe(events.TypeProductInventoryChanged, si.handleInventoryChanged),
			si.bus.Subscribe(events.TypeCustomerLoyaltyChanged, si.handleLoyaltyChanged),
		}
		si.logger.Info("service integrator initialized", zap.Int("reactions", len(si.subs)))
	})
}

// Shutdown cancels the subscriptions.
func (si *ServiceIntegrator) Shutdown() {
	for _, sub := range si.subs {
		sub.Cancel()
	}
}

// handleOrderCreated decrements stock for each line item and grants the
// customer floor(total/10) loyalty points.
func (si *ServiceIntegrator) handleOrderCreated(ctx context.Context, event events.DomainEvent) error {
	created, ok := event.(*events.OrderCreated)
	if !ok {
		return nil
	}

	order, err := si.orders.Get(ctx, created.OrderID)
	if err != nil {
		si.logger.Warn("order reaction skipped: order not loadable",
			zap.String("orderId", created.OrderID),
			zap.Error(err),
		)
		return nil
	}

	for _, item := range order.Items {
		if _, err := si.products.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
			// Keep going: one missing product must not block the rest of
			// the order's effects.
			si.logger.Warn("stock decrement failed",
				zap.String("orderId", order.ID),
				zap.String("productId", item.ProductID),
				zap.Error(err),
			)
		}
	}

	if order.CustomerID == "" {
		return nil
	}
	points := order.LoyaltyPoints()
	if points <= 0 {
		return nil
	}
	if _, err := si.customers.AddLoyaltyPoints(ctx, order.CustomerID, points); err != nil {
		si.logger.Warn("loyalty grant failed",
			zap.String("orderId", order.ID),
			zap.String("customerId", order.CustomerID),
			zap.Error(err),
		)
	}
	return nil
}

// handleOrderStatusChanged reverses the creation effects when an order is
// cancelled: stock comes back and the loyalty points recomputed from the
// order total are deducted.
func (si *ServiceIntegrator) handleOrderStatusChanged(ctx context.Context, event events.DomainEvent) error {
	changed, ok := event.(*events.OrderStatusChanged)
	if !ok || changed.NewStatus != valueobjects.OrderStatusCancelled.String() {
		return nil
	}

	order, err := si.orders.Get(ctx, changed.OrderID)
	if err != nil {
		si.logger.Warn("cancel reaction skipped: order not loadable",
			zap.String("orderId", changed.OrderID),
			zap.Error(err),
		)
		return nil
	}

	for _, item := range order.Items {
		if _, err := si.products.AdjustQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			si.logger.Warn("stock restore failed",
				zap.String("orderId", order.ID),
				zap.String("productId", item.ProductID),
				zap.Error(err),
			)
		}
	}

	if order.CustomerID == "" {
		return nil
	}
	points := order.LoyaltyPoints()
	if points <= 0 {
		return nil
	}
	if _, err := si.customers.AddLoyaltyPoints(ctx, order.CustomerID, -points); err != nil {
		si.logger.Warn("loyalty reversal failed",
			zap.String("orderId", order.ID),
			zap.String("customerId", order.CustomerID),
			zap.Error(err),
		)
	}
	return nil
}

// handleInventoryChanged raises stock alerts from the new quantity.
func (si *ServiceIntegrator) handleInventoryChanged(ctx context.Context, event events.DomainEvent) error {
	changed, ok := event.(*events.ProductInventoryChanged)
	if !ok {
		return nil
	}

	if changed.NewQuantity <= 0 {
		si.bus.Publish(ctx, events.NewInventoryOutOfStock(changed.ProductID))
		return nil
	}

	product, err := si.products.Get(ctx, changed.ProductID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			si.logger.Warn("stock alert skipped: product not loadable",
				zap.String("productId", changed.ProductID),
				zap.Error(err),
			)
		}
		return nil
	}
	if changed.NewQuantity <= product.LowStockThreshold {
		si.bus.Publish(ctx, events.NewInventoryLow(changed.ProductID, changed.NewQuantity, product.LowStockThreshold))
	}
	return nil
}

// handleLoyaltyChanged recomputes the membership tier from the new point
// balance and persists it when it moved.
func (si *ServiceIntegrator) handleLoyaltyChanged(ctx context.Context, event events.DomainEvent) error {
	changed, ok := event.(*events.CustomerLoyaltyChanged)
	if !ok {
		return nil
	}

	customer, err := si.customers.Get(ctx, changed.CustomerID)
	if err != nil {
		si.logger.Warn("tier reaction skipped: customer not loadable",
			zap.String("customerId", changed.CustomerID),
			zap.Error(err),
		)
		return nil
	}

	level := valueobjects.MembershipForPoints(changed.NewPoints)
	if level == customer.Membership {
		return nil
	}
	if _, err := si.customers.SetMembership(ctx, customer.ID, level); err != nil {
		si.logger.Warn("tier update failed",
			zap.String("customerId", customer.ID),
			zap.Error(err),
		)
	}
	return nil
}
