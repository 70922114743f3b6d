package models

// CartLineItem is one product entry in a device-scoped cart. Price and
// title are snapshotted at add time and not re-validated against the
// live catalog.
type CartLineItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	VendorID  string  `json:"vendor_id,omitempty"`
}
