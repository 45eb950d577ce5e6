package integrator

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/application/services"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/core/valueobjects"
	"pos-backend/domain/events"
	"pos-backend/infrastructure/eventbus"
	"pos-backend/infrastructure/persistence/memory"
)

type fixture struct {
	bus       *eventbus.Bus
	products  *services.ProductService
	orders    *services.OrderService
	customers *services.CustomerService
	si        *ServiceIntegrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bus := eventbus.New(nil)
	t.Cleanup(bus.Close)

	productStore := memory.NewProductStore()
	products := services.NewProductService(productStore, bus, 0, nil)
	orders := services.NewOrderService(memory.NewOrderStore(), productStore, bus, nil)
	customers := services.NewCustomerService(memory.NewCustomerStore(), bus, nil)

	si := New(bus, orders, products, customers, nil)
	si.Initialize()
	t.Cleanup(si.Shutdown)

	return &fixture{bus: bus, products: products, orders: orders, customers: customers, si: si}
}

func TestOrderCreationDecrementsStockAndGrantsPoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	coffee := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "30.00", 20)
	cake := f.mustCreateProduct(t, "Cake", "SKU-CAKE", "35.00", 10)
	customer := f.mustCreateCustomer(t, "Ada")

	order, err := f.orders.Create(ctx, services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: cake.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.RequireFromString("95.00")))

	f.bus.Wait()

	gotCoffee, err := f.products.Get(ctx, coffee.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, gotCoffee.Quantity)

	gotCake, err := f.products.Get(ctx, cake.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, gotCake.Quantity)

	// floor(95 / 10) = 9 points.
	gotCustomer, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, gotCustomer.LoyaltyPoints)
}

func TestLoyaltyGrantPromotesMembershipTier(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "95.00", 10)
	customer := f.mustCreateCustomer(t, "Ada")

	// Start just under the silver threshold.
	_, err := f.customers.AddLoyaltyPoints(ctx, customer.ID, 195)
	require.NoError(t, err)
	f.bus.Wait()

	got, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, valueobjects.MembershipBronze, got.Membership)

	// The order's 9 points push the balance to 204, crossing 200.
	_, err = f.orders.Create(ctx, services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	f.bus.Wait()

	got, err = f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 204, got.LoyaltyPoints)
	assert.Equal(t, valueobjects.MembershipSilver, got.Membership)
}

func TestOrderCancellationReversesEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "95.00", 10)
	customer := f.mustCreateCustomer(t, "Ada")

	order, err := f.orders.Create(ctx, services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	f.bus.Wait()

	gotProduct, err := f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 7, gotProduct.Quantity)

	_, err = f.orders.UpdateStatus(ctx, order.ID, valueobjects.OrderStatusCancelled)
	require.NoError(t, err)
	f.bus.Wait()

	gotProduct, err = f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, gotProduct.Quantity)

	gotCustomer, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotCustomer.LoyaltyPoints)
}

func TestAnonymousOrderGrantsNoPoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "30.00", 10)

	_, err := f.orders.Create(ctx, services.CreateOrderInput{
		Items: []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	f.bus.Wait()

	got, err := f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Quantity)
}

func TestLowStockAlertFires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var mu sync.Mutex
	var alerts []*events.InventoryLow
	f.bus.Subscribe(events.TypeInventoryLow, func(ctx context.Context, e events.DomainEvent) error {
		if alert, ok := e.(*events.InventoryLow); ok {
			mu.Lock()
			alerts = append(alerts, alert)
			mu.Unlock()
		}
		return nil
	})

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "30.00", 12)

	// 12 -> 8 crosses the default threshold of 10.
	_, err := f.products.AdjustQuantity(ctx, product.ID, -4)
	require.NoError(t, err)
	f.bus.Wait()

	require.Len(t, alerts, 1)
	assert.Equal(t, product.ID, alerts[0].ProductID)
	assert.Equal(t, 8, alerts[0].Quantity)
	assert.Equal(t, entities.DefaultLowStockThreshold, alerts[0].Threshold)
}

func TestOutOfStockAlertFires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var mu sync.Mutex
	outOfStock := 0
	low := 0
	f.bus.Subscribe(events.TypeInventoryOutOfStock, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		outOfStock++
		mu.Unlock()
		return nil
	})
	f.bus.Subscribe(events.TypeInventoryLow, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		low++
		mu.Unlock()
		return nil
	})

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "30.00", 5)

	_, err := f.products.AdjustQuantity(ctx, product.ID, -5)
	require.NoError(t, err)
	f.bus.Wait()

	assert.Equal(t, 1, outOfStock)
	assert.Equal(t, 0, low, "zero stock raises only the out-of-stock alert")
}

func TestInitializeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.si.Initialize()
	f.si.Initialize()

	product := f.mustCreateProduct(t, "Coffee", "SKU-COFFEE", "30.00", 20)
	customer := f.mustCreateCustomer(t, "Ada")

	_, err := f.orders.Create(ctx, services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	f.bus.Wait()

	// A double registration would decrement stock twice.
	got, err := f.products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 19, got.Quantity)
}

func (f *fixture) mustCreateProduct(t *testing.T, name, sku, price string, quantity int) *entities.Product {
	t.Helper()
	product, err := f.products.Create(context.Background(), services.CreateProductInput{
		Name:     name,
		SKU:      sku,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return product
}

func (f *fixture) mustCreateCustomer(t *testing.T, name string) *entities.Customer {
	t.Helper()
	customer, err := f.customers.Create(context.Background(), name, "", "")
	require.NoError(t, err)
	return customer
}
