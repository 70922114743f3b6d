package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is vendor-scoped: a multi-vendor checkout produces one Order
// per vendor. Items are frozen snapshots and TotalAmount is never
// recomputed after creation.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	VendorID        string          `json:"vendor_id"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderRequest is one per-vendor slice of a cart produced by the order
// splitter, before user identity and shipping address are attached.
type OrderRequest struct {
	VendorID    string      `json:"vendor_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
}
