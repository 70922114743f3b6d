package repositories

import (
	"context"
	"time"

	"marketplace/config"
	"marketplace/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists a single vendor-scoped order and its item snapshots
// in one transaction. The id and timestamp are assigned here, never by
// the caller. Atomicity covers one order only: a multi-vendor checkout
// issues several independent calls.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, vendor_id, total_amount, status, full_name, address, city, state, zip_code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		order.UserID,
		order.VendorID,
		order.TotalAmount,
		order.Status,
		order.ShippingAddress.FullName,
		order.ShippingAddress.Address,
		order.ShippingAddress.City,
		order.ShippingAddress.State,
		order.ShippingAddress.ZipCode,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return "", err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, title, price, quantity, image)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ProductID, item.Title, item.Price, item.Quantity, item.Image)
		if err != nil {
			return "", err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", err
	}

	return order.ID, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order := &models.Order{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, vendor_id, total_amount, status, full_name, address, city, state, zip_code, created_at, updated_at
		 FROM orders WHERE id = $1`, id).Scan(
		&order.ID,
		&order.UserID,
		&order.VendorID,
		&order.TotalAmount,
		&order.Status,
		&order.ShippingAddress.FullName,
		&order.ShippingAddress.Address,
		&order.ShippingAddress.City,
		&order.ShippingAddress.State,
		&order.ShippingAddress.ZipCode,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.list(ctx, `user_id`, userID)
}

func (r *OrderRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Order, error) {
	return r.list(ctx, `vendor_id`, vendorID)
}

func (r *OrderRepository) list(ctx context.Context, column, value string) ([]models.Order, error) {
	query := `SELECT id, user_id, vendor_id, total_amount, status, full_name, address, city, state, zip_code, created_at, updated_at
	          FROM orders WHERE ` + column + ` = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.VendorID,
			&order.TotalAmount,
			&order.Status,
			&order.ShippingAddress.FullName,
			&order.ShippingAddress.Address,
			&order.ShippingAddress.City,
			&order.ShippingAddress.State,
			&order.ShippingAddress.ZipCode,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.getItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *OrderRepository) getItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT product_id, title, price, quantity, image FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Title, &item.Price, &item.Quantity, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), orderID)
	return err
}
