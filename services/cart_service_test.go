package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/models"
)

type memoryStore struct {
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryStore) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestAddOrIncrementMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	item := models.CartLineItem{ProductID: "p1", Title: "Widget", Price: 10, VendorID: "v1"}

	_, err := svc.AddOrIncrement(ctx, "dev1", item)
	require.NoError(t, err)
	_, err = svc.AddOrIncrement(ctx, "dev1", item)
	require.NoError(t, err)

	items := svc.Load(ctx, "dev1")
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddOrIncrementSumsExplicitQuantities(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 3})
	require.NoError(t, err)
	_, err = svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 2})
	require.NoError(t, err)

	items := svc.Load(ctx, "dev1")
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddOrIncrementKeepsDistinctProductsApart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10})
	require.NoError(t, err)
	items, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p2", Price: 5})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	ctx := context.Background()

	for _, quantity := range []int{0, -1, -100} {
		svc := NewCartServiceWithStore(newMemoryStore())
		_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 5})
		require.NoError(t, err)

		items, err := svc.SetQuantity(ctx, "dev1", "p1", quantity)
		require.NoError(t, err)
		require.Len(t, items, 1, "line must never be auto-removed by a quantity update")
		assert.Equal(t, 1, items[0].Quantity)
	}
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10})
	require.NoError(t, err)

	items, err := svc.SetQuantity(ctx, "dev1", "p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestRemoveDeletesLineRegardlessOfQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 9})
	require.NoError(t, err)
	_, err = svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p2", Price: 5})
	require.NoError(t, err)

	items, err := svc.Remove(ctx, "dev1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	for _, item := range svc.Load(ctx, "dev1") {
		assert.NotEqual(t, "p1", item.ProductID)
	}
}

func TestCartTotal(t *testing.T) {
	assert.Zero(t, CartTotal([]models.CartLineItem{}))

	items := []models.CartLineItem{
		{ProductID: "p1", Price: 10, Quantity: 2},
		{ProductID: "p2", Price: 5, Quantity: 1},
	}
	assert.Equal(t, 25.0, CartTotal(items))
}

func TestLoadMalformedValueReadsAsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.data["cart:dev1"] = `{"not": "a cart"`

	svc := NewCartServiceWithStore(store)
	items := svc.Load(ctx, "dev1")
	assert.Empty(t, items)
}

func TestClearRemovesPersistedCart(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewCartServiceWithStore(store)

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "dev1"))
	assert.Empty(t, svc.Load(ctx, "dev1"))
	assert.NotContains(t, store.data, "cart:dev1")
}

func TestCartsAreScopedToTheirKey(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWithStore(newMemoryStore())

	_, err := svc.AddOrIncrement(ctx, "dev1", models.CartLineItem{ProductID: "p1", Price: 10})
	require.NoError(t, err)

	assert.Empty(t, svc.Load(ctx, "dev2"))
}
