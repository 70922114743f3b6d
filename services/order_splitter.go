package services

import "marketplace/models"

// UnknownVendor groups line items that carry no vendor id.
const UnknownVendor = "unknown"

// SplitCart turns a flat cart into one OrderRequest per distinct
// vendor. Groups appear in insertion order of each vendor's first line
// item, vendor-identifying fields are stripped from the items, and each
// group's total covers that group only. Pure function.
func SplitCart(items []models.CartLineItem) []models.OrderRequest {
	requests := []models.OrderRequest{}
	index := map[string]int{}

	for _, item := range items {
		vendorID := item.VendorID
		if vendorID == "" {
			vendorID = UnknownVendor
		}

		i, ok := index[vendorID]
		if !ok {
			i = len(requests)
			index[vendorID] = i
			requests = append(requests, models.OrderRequest{VendorID: vendorID})
		}

		requests[i].Items = append(requests[i].Items, models.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
		requests[i].TotalAmount += item.Price * float64(item.Quantity)
	}

	return requests
}
