package models

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"omitempty,oneof=customer vendor"`
	DisplayName string `json:"display_name" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	ZipCode  string `json:"zip_code" binding:"required"`
}

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category" binding:"required"`
	Images      []string `json:"images"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VendorStats struct {
	TotalProducts  int     `json:"total_products"`
	InStock        int     `json:"in_stock"`
	LowStock       int     `json:"low_stock"`
	InventoryValue float64 `json:"inventory_value"`
}
