package controllers

import (
	"github.com/gin-gonic/gin"

	"marketplace/models"
	"marketplace/services"
)

type VendorController struct {
	productService *services.ProductService
}

func NewVendorController() *VendorController {
	return &VendorController{productService: services.NewProductService()}
}

// GetDashboard godoc
// @Summary Vendor dashboard
// @Description Catalog stats: product count, stock coverage, inventory value
// @Tags Vendor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /vendor/dashboard [get]
func (ctrl *VendorController) GetDashboard(c *gin.Context) {
	vendorID := c.GetString("user_id")

	stats, err := ctrl.productService.VendorStats(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load dashboard", "error": err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Dashboard retrieved successfully",
		Data:    stats,
	})
}
