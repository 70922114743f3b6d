package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"marketplace/models"
)

var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("all shipping address fields are required")
)

// Identity is the authenticated caller, injected by the HTTP layer
// rather than read from any global.
type Identity struct {
	UserID string
	Email  string
}

// OrderCreator persists one vendor-scoped order and returns its id.
type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) (string, error)
}

// ConfirmationMailer sends the post-checkout confirmation.
type ConfirmationMailer interface {
	SendOrderConfirmationEmail(toEmail string, orderIDs []string, total float64) error
}

// CheckoutService converts a cart into one persisted order per vendor.
//
// Order creation is sequential and not atomic across vendors: if a
// later creation fails, earlier orders stand and the cart is left
// intact, so a retry re-submits the already-placed vendor orders. This
// mirrors the intended at-least-once semantics; there is no rollback
// and no idempotency token.
type CheckoutService struct {
	cart   *CartService
	orders OrderCreator
	mailer ConfirmationMailer
}

// NewCheckoutService wires the workflow. mailer may be nil when SMTP is
// not configured; confirmation mail is best-effort either way.
func NewCheckoutService(cart *CartService, orders OrderCreator, mailer ConfirmationMailer) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, mailer: mailer}
}

// Checkout places one order per vendor represented in the cart and
// clears the cart only after every creation succeeded. On any failure
// the cart is untouched and no further vendors are attempted.
func (s *CheckoutService) Checkout(ctx context.Context, caller Identity, cartKey string, address models.ShippingAddress) ([]string, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}

	items := s.cart.Load(ctx, cartKey)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if address.FullName == "" || address.Address == "" || address.City == "" ||
		address.State == "" || address.ZipCode == "" {
		return nil, ErrIncompleteAddress
	}

	requests := SplitCart(items)

	orderIDs := make([]string, 0, len(requests))
	for _, req := range requests {
		order := &models.Order{
			UserID:          caller.UserID,
			VendorID:        req.VendorID,
			Items:           req.Items,
			TotalAmount:     req.TotalAmount,
			Status:          models.OrderStatusPending,
			ShippingAddress: address,
		}

		id, err := s.orders.Create(ctx, order)
		if err != nil {
			if len(orderIDs) > 0 {
				log.Printf("Checkout aborted after %d of %d orders created; cart left intact", len(orderIDs), len(requests))
			}
			return nil, fmt.Errorf("failed to create order for vendor %s: %w", req.VendorID, err)
		}
		orderIDs = append(orderIDs, id)
	}

	if err := s.cart.Clear(ctx, cartKey); err != nil {
		// Orders are placed; a stale cart is recoverable, a lost order is not.
		log.Printf("Failed to clear cart %s after checkout: %v", cartKey, err)
	}

	if s.mailer != nil && caller.Email != "" {
		if err := s.mailer.SendOrderConfirmationEmail(caller.Email, orderIDs, CartTotal(items)); err != nil {
			log.Printf("Failed to send order confirmation to %s: %v", caller.Email, err)
		}
	}

	return orderIDs, nil
}
