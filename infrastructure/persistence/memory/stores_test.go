package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

func TestProductStoreCopiesOnRead(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	product, err := entities.NewProduct("Coffee", "SKU-1", decimal.NewFromInt(30), 10, "")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, product))

	loaded, err := store.FindByID(ctx, product.ID)
	require.NoError(t, err)
	loaded.Quantity = 99

	again, err := store.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Quantity)
}

func TestProductStoreNotFound(t *testing.T) {
	store := NewProductStore()

	_, err := store.FindByID(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))

	err = store.Delete(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductStoreFindAllSortedByName(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	for _, name := range []string{"Cake", "Apple", "Bread"} {
		product, err := entities.NewProduct(name, "SKU-"+name, decimal.NewFromInt(1), 1, "")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, product))
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Apple", all[0].Name)
	assert.Equal(t, "Bread", all[1].Name)
	assert.Equal(t, "Cake", all[2].Name)
}

func TestOrderStoreCopiesLineItems(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()

	order, err := entities.NewOrder("c-1", []entities.OrderItem{
		{ProductID: "p-1", ProductName: "Coffee", UnitPrice: decimal.NewFromInt(30), Quantity: 2},
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, order))

	loaded, err := store.FindByID(ctx, order.ID)
	require.NoError(t, err)
	loaded.Items[0].Quantity = 99

	again, err := store.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestOrderStoreFindByDateRange(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()

	order, err := entities.NewOrder("c-1", []entities.OrderItem{
		{ProductID: "p-1", UnitPrice: decimal.NewFromInt(10), Quantity: 1},
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, order))

	now := time.Now()

	inRange, err := store.FindByDateRange(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	outOfRange, err := store.FindByDateRange(ctx, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, outOfRange)
}

func TestCustomerStoreRoundTrip(t *testing.T) {
	store := NewCustomerStore()
	ctx := context.Background()

	customer, err := entities.NewCustomer("Ada", "ada@example.com", "")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, customer))

	loaded, err := store.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.Name)

	require.NoError(t, store.Delete(ctx, customer.ID))
	_, err = store.FindByID(ctx, customer.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
