package repositories

import (
	"context"
	"time"

	"marketplace/config"
	"marketplace/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		user.Email,
		user.Password,
		user.Role,
		user.DisplayName,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, role, display_name, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, email, password, role, display_name, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) CreateVendorProfile(ctx context.Context, profile *models.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (vendor_id, business_name, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return config.DB.QueryRow(ctx, query,
		profile.VendorID,
		profile.BusinessName,
		profile.Description,
		time.Now(),
	).Scan(&profile.CreatedAt)
}

func (r *UserRepository) GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	query := `SELECT vendor_id, business_name, description, created_at FROM vendor_profiles WHERE vendor_id = $1`

	profile := &models.VendorProfile{}
	err := config.DB.QueryRow(ctx, query, vendorID).Scan(
		&profile.VendorID,
		&profile.BusinessName,
		&profile.Description,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
