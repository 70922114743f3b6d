package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/models"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    string
		price       float64
		stock       int
		imageCount  int
		wantErr     string
	}{
		{
			name: "valid product",
			title: "Ceramic Mug", description: "Hand made", category: "Home & Garden",
			price: 12.5, stock: 3, imageCount: 2,
		},
		{
			name:        "missing title",
			description: "Hand made", category: "Home & Garden", price: 12.5,
			wantErr: "title is required",
		},
		{
			name:  "missing description",
			title: "Ceramic Mug", category: "Home & Garden", price: 12.5,
			wantErr: "description is required",
		},
		{
			name:  "missing category",
			title: "Ceramic Mug", description: "Hand made", price: 12.5,
			wantErr: "category is required",
		},
		{
			name:  "unknown category",
			title: "Ceramic Mug", description: "Hand made", category: "Gadgets", price: 12.5,
			wantErr: "unknown category: Gadgets",
		},
		{
			name:  "zero price",
			title: "Ceramic Mug", description: "Hand made", category: "Home & Garden", price: 0,
			wantErr: "price must be greater than zero",
		},
		{
			name:  "negative price",
			title: "Ceramic Mug", description: "Hand made", category: "Home & Garden", price: -5,
			wantErr: "price must be greater than zero",
		},
		{
			name:  "negative stock",
			title: "Ceramic Mug", description: "Hand made", category: "Home & Garden",
			price: 12.5, stock: -1,
			wantErr: "stock cannot be negative",
		},
		{
			name:  "too many images",
			title: "Ceramic Mug", description: "Hand made", category: "Home & Garden",
			price: 12.5, imageCount: models.MaxProductImages + 1,
			wantErr: "at most 5 images allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.title, tt.description, tt.category, tt.price, tt.stock, tt.imageCount)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProductAcceptsEveryKnownCategory(t *testing.T) {
	for _, category := range models.Categories {
		err := ValidateProduct("Item", "Desc", category, 1, 0, 0)
		assert.NoError(t, err, category)
	}
}
