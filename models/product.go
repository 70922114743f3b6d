package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	VendorID    string    `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Health & Beauty",
	"Food & Beverage",
}

const MaxProductImages = 5
