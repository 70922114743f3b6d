package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/models"
)

type fakeOrderCreator struct {
	created []models.Order
	failAt  int // 1-based call index that fails; 0 means never
	calls   int
}

func (f *fakeOrderCreator) Create(ctx context.Context, order *models.Order) (string, error) {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return "", errors.New("order service unavailable")
	}
	f.created = append(f.created, *order)
	return fmt.Sprintf("order-%d", f.calls), nil
}

type fakeMailer struct {
	toEmail  string
	orderIDs []string
	total    float64
	sent     int
}

func (f *fakeMailer) SendOrderConfirmationEmail(toEmail string, orderIDs []string, total float64) error {
	f.sent++
	f.toEmail = toEmail
	f.orderIDs = orderIDs
	f.total = total
	return nil
}

var testAddress = models.ShippingAddress{
	FullName: "Test Buyer",
	Address:  "1 Main St",
	City:     "Springfield",
	State:    "IL",
	ZipCode:  "62704",
}

func seedCart(t *testing.T, svc *CartService, cartKey string, items ...models.CartLineItem) {
	t.Helper()
	ctx := context.Background()
	for _, item := range items {
		_, err := svc.AddOrIncrement(ctx, cartKey, item)
		require.NoError(t, err)
	}
}

func TestCheckoutCreatesOneOrderPerVendorAndClearsCart(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	seedCart(t, cart, "dev1",
		models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 2, VendorID: "v1"},
		models.CartLineItem{ProductID: "p2", Price: 5, Quantity: 1, VendorID: "v2"},
	)

	creator := &fakeOrderCreator{}
	mailer := &fakeMailer{}
	svc := NewCheckoutService(cart, creator, mailer)

	orderIDs, err := svc.Checkout(ctx, Identity{UserID: "u1", Email: "buyer@example.com"}, "dev1", testAddress)
	require.NoError(t, err)
	assert.Equal(t, []string{"order-1", "order-2"}, orderIDs)

	require.Len(t, creator.created, 2)
	assert.Equal(t, "v1", creator.created[0].VendorID)
	assert.Equal(t, 20.0, creator.created[0].TotalAmount)
	assert.Equal(t, "v2", creator.created[1].VendorID)
	assert.Equal(t, 5.0, creator.created[1].TotalAmount)
	for _, order := range creator.created {
		assert.Equal(t, "u1", order.UserID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, testAddress, order.ShippingAddress)
	}

	assert.Empty(t, cart.Load(ctx, "dev1"), "cart must be cleared after a fully successful checkout")

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "buyer@example.com", mailer.toEmail)
	assert.Equal(t, orderIDs, mailer.orderIDs)
	assert.Equal(t, 25.0, mailer.total)
}

func TestCheckoutFirstFailureLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	seedCart(t, cart, "dev1",
		models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 1, VendorID: "v1"},
		models.CartLineItem{ProductID: "p2", Price: 5, Quantity: 1, VendorID: "v2"},
	)

	creator := &fakeOrderCreator{failAt: 1}
	svc := NewCheckoutService(cart, creator, nil)

	_, err := svc.Checkout(ctx, Identity{UserID: "u1"}, "dev1", testAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v1")

	assert.Empty(t, creator.created)
	assert.Len(t, cart.Load(ctx, "dev1"), 2, "cart must survive a failed checkout")
}

func TestCheckoutLaterFailureStopsAndKeepsCart(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	seedCart(t, cart, "dev1",
		models.CartLineItem{ProductID: "p1", Price: 10, Quantity: 1, VendorID: "v1"},
		models.CartLineItem{ProductID: "p2", Price: 5, Quantity: 1, VendorID: "v2"},
		models.CartLineItem{ProductID: "p3", Price: 2, Quantity: 1, VendorID: "v3"},
	)

	creator := &fakeOrderCreator{failAt: 2}
	mailer := &fakeMailer{}
	svc := NewCheckoutService(cart, creator, mailer)

	_, err := svc.Checkout(ctx, Identity{UserID: "u1", Email: "buyer@example.com"}, "dev1", testAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v2")

	// The first vendor's order stands; the third is never attempted.
	require.Len(t, creator.created, 1)
	assert.Equal(t, "v1", creator.created[0].VendorID)
	assert.Equal(t, 2, creator.calls)

	assert.Len(t, cart.Load(ctx, "dev1"), 3)
	assert.Zero(t, mailer.sent)
}

func TestCheckoutRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	seedCart(t, cart, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, VendorID: "v1"})

	creator := &fakeOrderCreator{}
	svc := NewCheckoutService(cart, creator, nil)

	_, err := svc.Checkout(ctx, Identity{}, "dev1", testAddress)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, creator.calls)
	assert.Len(t, cart.Load(ctx, "dev1"), 1)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	creator := &fakeOrderCreator{}
	svc := NewCheckoutService(cart, creator, nil)

	_, err := svc.Checkout(ctx, Identity{UserID: "u1"}, "dev1", testAddress)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, creator.calls)
}

func TestCheckoutRejectsIncompleteAddress(t *testing.T) {
	ctx := context.Background()

	incomplete := []models.ShippingAddress{
		{Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
		{FullName: "Test Buyer", City: "Springfield", State: "IL", ZipCode: "62704"},
		{FullName: "Test Buyer", Address: "1 Main St", State: "IL", ZipCode: "62704"},
		{FullName: "Test Buyer", Address: "1 Main St", City: "Springfield", ZipCode: "62704"},
		{FullName: "Test Buyer", Address: "1 Main St", City: "Springfield", State: "IL"},
	}

	for _, address := range incomplete {
		cart := NewCartServiceWithStore(newMemoryStore())
		seedCart(t, cart, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, VendorID: "v1"})

		creator := &fakeOrderCreator{}
		svc := NewCheckoutService(cart, creator, nil)

		_, err := svc.Checkout(ctx, Identity{UserID: "u1"}, "dev1", address)
		assert.ErrorIs(t, err, ErrIncompleteAddress)
		assert.Zero(t, creator.calls)
	}
}

func TestCheckoutWithoutMailerStillSucceeds(t *testing.T) {
	ctx := context.Background()
	cart := NewCartServiceWithStore(newMemoryStore())
	seedCart(t, cart, "dev1", models.CartLineItem{ProductID: "p1", Price: 10, VendorID: "v1"})

	svc := NewCheckoutService(cart, &fakeOrderCreator{}, nil)

	orderIDs, err := svc.Checkout(ctx, Identity{UserID: "u1", Email: "buyer@example.com"}, "dev1", testAddress)
	require.NoError(t, err)
	assert.Len(t, orderIDs, 1)
}
