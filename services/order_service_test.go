package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/models"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusShipped,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	} {
		assert.True(t, IsValidStatus(status), status)
	}

	for _, status := range []string{"", "Pending", "delivered", "refunded"} {
		assert.False(t, IsValidStatus(status), status)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.OrderStatusPending, models.OrderStatusShipped, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
		{models.OrderStatusPending, models.OrderStatusPending, false},
		{models.OrderStatusShipped, models.OrderStatusCompleted, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, true},
		{models.OrderStatusShipped, models.OrderStatusPending, false},
		{models.OrderStatusCompleted, models.OrderStatusShipped, false},
		{models.OrderStatusCompleted, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusShipped, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
