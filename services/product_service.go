package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"marketplace/models"
	"marketplace/repositories"
)

var ErrProductNotOwnedByVendor = errors.New("product does not belong to this vendor")

// lowStockThreshold feeds the vendor dashboard's low-stock count.
const lowStockThreshold = 5

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{productRepo: repositories.NewProductRepository()}
}

func ValidateProduct(title, description, category string, price float64, stock, imageCount int) error {
	if title == "" {
		return errors.New("title is required")
	}
	if description == "" {
		return errors.New("description is required")
	}
	if category == "" {
		return errors.New("category is required")
	}
	if !isKnownCategory(category) {
		return fmt.Errorf("unknown category: %s", category)
	}
	if price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if stock < 0 {
		return errors.New("stock cannot be negative")
	}
	if imageCount > models.MaxProductImages {
		return fmt.Errorf("at most %d images allowed", models.MaxProductImages)
	}
	return nil
}

func isKnownCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *ProductService) GetAll(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	products, total, err := s.productRepo.GetAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	return s.productRepo.GetByVendor(ctx, vendorID)
}

func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(ctx, category)
}

func (s *ProductService) Create(ctx context.Context, vendorID, vendorName string, req models.CreateProductRequest) (*models.Product, error) {
	if err := ValidateProduct(req.Title, req.Description, req.Category, req.Price, req.Stock, len(req.Images)); err != nil {
		return nil, err
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		VendorID:    vendorID,
		VendorName:  vendorName,
		Images:      images,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id, vendorID string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if product.VendorID != vendorID {
		return nil, ErrProductNotOwnedByVendor
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := ValidateProduct(product.Title, product.Description, product.Category, product.Price, product.Stock, len(product.Images)); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id, vendorID string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("product not found")
	}

	if product.VendorID != vendorID {
		return ErrProductNotOwnedByVendor
	}

	return s.productRepo.Delete(ctx, id)
}

// VendorStats summarizes a vendor's catalog for the dashboard. Stock is
// never tied to outstanding orders; the inventory value is price*stock
// over the current listings.
func (s *ProductService) VendorStats(ctx context.Context, vendorID string) (*models.VendorStats, error) {
	products, err := s.productRepo.GetByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	stats := &models.VendorStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.Stock > 0 {
			stats.InStock++
		}
		if p.Stock < lowStockThreshold {
			stats.LowStock++
		}
		stats.InventoryValue += p.Price * float64(p.Stock)
	}
	return stats, nil
}
