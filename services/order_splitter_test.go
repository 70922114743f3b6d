package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/models"
)

func TestSplitCartGroupsByVendor(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Title: "Mug", Price: 10, Quantity: 1, VendorID: "vendorA"},
		{ProductID: "p2", Title: "Plate", Price: 8, Quantity: 1, VendorID: "vendorA"},
		{ProductID: "p3", Title: "Spoon", Price: 3, Quantity: 1, VendorID: "vendorB"},
	}

	requests := SplitCart(items)

	require.Len(t, requests, 2)
	assert.Equal(t, "vendorA", requests[0].VendorID)
	assert.Len(t, requests[0].Items, 2)
	assert.Equal(t, "vendorB", requests[1].VendorID)
	assert.Len(t, requests[1].Items, 1)
}

func TestSplitCartTotalsPartitionCartTotal(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Price: 10, Quantity: 2, VendorID: "v1"},
		{ProductID: "p2", Price: 5, Quantity: 1, VendorID: "v2"},
	}

	requests := SplitCart(items)

	require.Len(t, requests, 2)
	assert.Equal(t, 20.0, requests[0].TotalAmount)
	assert.Equal(t, 5.0, requests[1].TotalAmount)

	sum := 0.0
	for _, req := range requests {
		sum += req.TotalAmount
	}
	assert.Equal(t, CartTotal(items), sum)
}

func TestSplitCartPreservesInsertionOrder(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Price: 1, Quantity: 1, VendorID: "zebra"},
		{ProductID: "p2", Price: 1, Quantity: 1, VendorID: "alpha"},
		{ProductID: "p3", Price: 1, Quantity: 1, VendorID: "zebra"},
		{ProductID: "p4", Price: 1, Quantity: 1, VendorID: "mango"},
	}

	requests := SplitCart(items)

	require.Len(t, requests, 3)
	assert.Equal(t, "zebra", requests[0].VendorID)
	assert.Equal(t, "alpha", requests[1].VendorID)
	assert.Equal(t, "mango", requests[2].VendorID)
}

func TestSplitCartMissingVendorFallsBackToUnknown(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Price: 4, Quantity: 1},
		{ProductID: "p2", Price: 6, Quantity: 1, VendorID: "v1"},
		{ProductID: "p3", Price: 2, Quantity: 1},
	}

	requests := SplitCart(items)

	require.Len(t, requests, 2)
	assert.Equal(t, UnknownVendor, requests[0].VendorID)
	assert.Len(t, requests[0].Items, 2)
	assert.Equal(t, 6.0, requests[0].TotalAmount)
}

func TestSplitCartIsDeterministic(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Price: 10, Quantity: 2, VendorID: "v1"},
		{ProductID: "p2", Price: 5, Quantity: 1, VendorID: "v2"},
		{ProductID: "p3", Price: 7, Quantity: 3, VendorID: "v1"},
	}

	first := SplitCart(items)
	second := SplitCart(items)
	assert.Equal(t, first, second)
}

func TestSplitCartCopiesItemSnapshots(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Title: "Mug", Price: 10, Quantity: 2, Image: "mug.jpg", VendorID: "v1"},
	}

	requests := SplitCart(items)

	require.Len(t, requests, 1)
	require.Len(t, requests[0].Items, 1)
	got := requests[0].Items[0]
	assert.Equal(t, "p1", got.ProductID)
	assert.Equal(t, "Mug", got.Title)
	assert.Equal(t, 10.0, got.Price)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "mug.jpg", got.Image)
}

func TestSplitCartEmptyCart(t *testing.T) {
	assert.Empty(t, SplitCart(nil))
	assert.Empty(t, SplitCart([]models.CartLineItem{}))
}
