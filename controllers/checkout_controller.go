package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"marketplace/models"
	"marketplace/repositories"
	"marketplace/services"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController() *CheckoutController {
	var mailer services.ConfirmationMailer
	if emailSvc, err := models.NewEmailService(); err == nil {
		mailer = emailSvc
	} else {
		log.Println("Order confirmation email disabled:", err)
	}

	return &CheckoutController{
		checkoutService: services.NewCheckoutService(
			services.NewCartService(),
			repositories.NewOrderRepository(),
			mailer,
		),
	}
}

// Checkout godoc
// @Summary Place orders from the cart
// @Description Creates one order per vendor in the cart. On partial failure earlier orders stand and the cart is kept.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Cart-Key header string true "Cart key"
// @Param request body models.CheckoutRequest true "Shipping address"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All shipping address fields are required", "error": err.Error()})
		return
	}

	caller := services.Identity{
		UserID: c.GetString("user_id"),
		Email:  c.GetString("user_email"),
	}

	address := models.ShippingAddress{
		FullName: req.FullName,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
	}

	orderIDs, err := ctrl.checkoutService.Checkout(c.Request.Context(), caller, c.GetHeader(cartKeyHeader), address)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			c.JSON(401, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrIncompleteAddress):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    models.CheckoutResponse{OrderIDs: orderIDs},
	})
}
