package repositories

import (
	"context"
	"time"

	"marketplace/config"
	"marketplace/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, title, description, price, stock, category, vendor_id, vendor_name, images, created_at, updated_at`

func scanProduct(row interface {
	Scan(dest ...interface{}) error
}, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.VendorID,
		&p.VendorName,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (title, description, price, stock, category, vendor_id, vendor_name, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.Title,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.VendorID,
		product.VendorName,
		product.Images,
		now,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// GetAll returns the catalog newest-first, one page at a time.
func (r *ProductRepository) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	if err := scanProduct(config.DB.QueryRow(ctx, query, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET title = $1, description = $2, price = $3, stock = $4, category = $5, images = $6, updated_at = $7
		WHERE id = $8
	`
	_, err := config.DB.Exec(ctx, query,
		product.Title,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.Images,
		time.Now(),
		product.ID,
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
