package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marketplace/models"
	"marketplace/services"
)

const cartKeyHeader = "X-Cart-Key"

type CartController struct {
	cartService    *services.CartService
	productService *services.ProductService
}

func NewCartController() *CartController {
	return &CartController{
		cartService:    services.NewCartService(),
		productService: services.NewProductService(),
	}
}

// cartKey returns the device's cart key, minting a fresh one when the
// client does not present one. The key is always echoed back so the
// device can hold on to it.
func (ctrl *CartController) cartKey(c *gin.Context) string {
	key := c.GetHeader(cartKeyHeader)
	if key == "" {
		key = uuid.NewString()
	}
	c.Header(cartKeyHeader, key)
	return key
}

func (ctrl *CartController) respond(c *gin.Context, cartKey string, items []models.CartLineItem, message string) {
	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data: models.CartResponse{
			CartKey: cartKey,
			Items:   items,
			Total:   services.CartTotal(items),
		},
	})
}

// GetCart godoc
// @Summary Get cart
// @Description Get the device's cart; an unreadable stored cart reads as empty
// @Tags Cart
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	key := ctrl.cartKey(c)
	items := ctrl.cartService.Load(c.Request.Context(), key)
	ctrl.respond(c, key, items, "Cart retrieved successfully")
}

// AddItem godoc
// @Summary Add product to cart
// @Description Add a product; quantities merge into an existing line for the same product
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.productService.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	// Snapshot at add time; price is not re-validated against the live
	// catalog afterwards.
	item := models.CartLineItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     image,
		Quantity:  req.Quantity,
		VendorID:  product.VendorID,
	}

	key := ctrl.cartKey(c)
	items, err := ctrl.cartService.AddOrIncrement(c.Request.Context(), key, item)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctrl.respond(c, key, items, "Item added to cart")
}

// UpdateItemQuantity godoc
// @Summary Set line quantity
// @Description Set a line's quantity; values below 1 clamp to 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param productId path string true "Product ID"
// @Param request body models.SetQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItemQuantity(c *gin.Context) {
	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	key := ctrl.cartKey(c)
	items, err := ctrl.cartService.SetQuantity(c.Request.Context(), key, c.Param("productId"), req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctrl.respond(c, key, items, "Quantity updated")
}

// RemoveItem godoc
// @Summary Remove line from cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	key := ctrl.cartKey(c)
	items, err := ctrl.cartService.Remove(c.Request.Context(), key, c.Param("productId"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctrl.respond(c, key, items, "Item removed from cart")
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	key := ctrl.cartKey(c)
	if err := ctrl.cartService.Clear(c.Request.Context(), key); err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctrl.respond(c, key, []models.CartLineItem{}, "Cart cleared")
}
