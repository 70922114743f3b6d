package services

import (
	"context"
	"errors"

	"marketplace/models"
	"marketplace/repositories"
)

var (
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("order status transition not allowed")
	ErrOrderNotOwnedByVendor = errors.New("order does not belong to this vendor")
)

// statusTransitions is the allowed graph: pending -> shipped ->
// completed, with cancellation possible until completion.
var statusTransitions = map[string][]string{
	models.OrderStatusPending: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusCompleted, models.OrderStatusCancelled},
}

func IsValidStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusShipped,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{orderRepo: repositories.NewOrderRepository()}
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(ctx, userID)
}

func (s *OrderService) GetOrdersByVendor(ctx context.Context, vendorID string) ([]models.Order, error) {
	return s.orderRepo.GetByVendor(ctx, vendorID)
}

// UpdateStatus advances an order along the transition graph. Only the
// vendor the order belongs to may move it.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, vendorID, status string) (*models.Order, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.VendorID != vendorID {
		return nil, ErrOrderNotOwnedByVendor
	}

	if !CanTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}
