package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/domain/core/entities"
	"pos-backend/domain/core/valueobjects"
	"pos-backend/domain/events"
	"pos-backend/infrastructure/persistence/memory"
	apperrors "pos-backend/pkg/errors"
)

// recordingPublisher captures published events synchronously for assertions.
type recordingPublisher struct {
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.DomainEvent) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) typesPublished() []string {
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.EventType())
	}
	return types
}

func newOrderFixture(t *testing.T) (*OrderService, *ProductService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	productStore := memory.NewProductStore()
	products := NewProductService(productStore, pub, 0, nil)
	orders := NewOrderService(memory.NewOrderStore(), productStore, pub, nil)
	return orders, products, pub
}

func seedProduct(t *testing.T, products *ProductService, price string, quantity int) *entities.Product {
	t.Helper()
	product, err := products.Create(context.Background(), CreateProductInput{
		Name:     "Coffee",
		SKU:      "SKU-" + price,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return product
}

func TestOrderCreateCapturesCatalogState(t *testing.T) {
	orders, products, pub := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "30.00", 10)

	order, err := orders.Create(ctx, CreateOrderInput{
		CustomerID: "c-1",
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Coffee", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("60.00")))
	assert.Contains(t, pub.typesPublished(), events.TypeOrderCreated)
}

func TestOrderCreateRejectsUnknownProduct(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	_, err := orders.Create(context.Background(), CreateOrderInput{
		Items: []OrderItemInput{{ProductID: "missing", Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderCreateRejectsInactiveProduct(t *testing.T) {
	orders, products, _ := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "30.00", 10)
	inactive := false
	_, err := products.Update(ctx, product.ID, UpdateProductInput{Active: &inactive})
	require.NoError(t, err)

	_, err = orders.Create(ctx, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestOrderCreateRejectsEmptyOrder(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	_, err := orders.Create(context.Background(), CreateOrderInput{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	orders, products, pub := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "30.00", 10)
	order, err := orders.Create(ctx, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.OrderStatusCompleted, updated.Status)
	assert.Contains(t, pub.typesPublished(), events.TypeOrderStatusChanged)

	// Completed orders cannot reopen.
	_, err = orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusPending)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// Cancellation is allowed, then the order is terminal.
	_, err = orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusCancelled)
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusCompleted)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateStatusSameStatusIsNoop(t *testing.T) {
	orders, products, pub := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "30.00", 10)
	order, err := orders.Create(ctx, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	before := len(pub.events)
	_, err = orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pub.events, before)
}

func TestSummarizeSkipsCancelledOrders(t *testing.T) {
	orders, products, _ := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "10.00", 100)

	kept, err := orders.Create(ctx, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	dropped, err := orders.Create(ctx, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, dropped.ID, valueobjects.OrderStatusCancelled)
	require.NoError(t, err)

	summary, err := orders.Summarize(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.OrderCount)
	assert.Equal(t, 3, summary.ItemsSold)
	assert.True(t, summary.Revenue.Equal(kept.Total))
}
