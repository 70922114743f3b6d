package models

import "time"

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VendorProfile struct {
	VendorID     string    `json:"vendor_id"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
