package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/config"
	"marketplace/models"
	"marketplace/repositories"
	"marketplace/services"
)

type ProductController struct {
	productService *services.ProductService
	userRepo       *repositories.UserRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
		userRepo:       repositories.NewUserRepository(),
	}
}

// GetAllProducts godoc
// @Summary List products
// @Description List products newest-first, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products, err := ctrl.productService.GetByCategory(c.Request.Context(), category)
		if err != nil {
			// Degrade to an empty listing rather than blocking the page.
			log.Printf("Failed to load products for category %s: %v", category, err)
			products = []models.Product{}
		}
		c.JSON(200, models.Response{
			Success: true,
			Message: "Products retrieved successfully",
			Data:    products,
		})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	response, err := ctrl.productService.GetAll(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("Failed to load products: %v", err)
		c.JSON(200, models.PaginationResponse{
			Success: true,
			Message: "Products retrieved successfully",
			Data:    []models.Product{},
		})
		return
	}

	c.JSON(200, response)
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// GetCategories godoc
// @Summary List categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    models.Categories,
	})
}

// GetVendorProducts godoc
// @Summary List own products
// @Tags Vendor - Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /vendor/products [get]
func (ctrl *ProductController) GetVendorProducts(c *gin.Context) {
	vendorID := c.GetString("user_id")

	products, err := ctrl.productService.GetByVendor(c.Request.Context(), vendorID)
	if err != nil {
		log.Printf("Failed to load vendor products: %v", err)
		products = []models.Product{}
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// CreateProduct godoc
// @Summary Create product
// @Tags Vendor - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /vendor/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	vendorID := c.GetString("user_id")

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), vendorID, ctrl.vendorName(c, vendorID), req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Vendor - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /vendor/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	vendorID := c.GetString("user_id")

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), c.Param("id"), vendorID, req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotOwnedByVendor) {
			c.JSON(403, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Vendor - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /vendor/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	vendorID := c.GetString("user_id")

	if err := ctrl.productService.Delete(c.Request.Context(), c.Param("id"), vendorID); err != nil {
		if errors.Is(err, services.ErrProductNotOwnedByVendor) {
			c.JSON(403, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload an image and get back its URL
// @Tags Vendor - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /vendor/products/images [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file is required"})
		return
	}

	cloudinarySvc, err := models.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image storage not configured", "error": err.Error()})
		return
	}

	if err := cloudinarySvc.ValidateImageFile(fileHeader, config.AppConfig.MaxUploadSize); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, publicID, err := cloudinarySvc.UploadImage(c.Request.Context(), file, fileHeader.Filename, "products")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Image uploaded successfully",
		Data:    gin.H{"url": url, "public_id": publicID},
	})
}

func (ctrl *ProductController) vendorName(c *gin.Context, vendorID string) string {
	profile, err := ctrl.userRepo.GetVendorProfile(c.Request.Context(), vendorID)
	if err == nil && profile.BusinessName != "" {
		return profile.BusinessName
	}

	user, err := ctrl.userRepo.FindByID(c.Request.Context(), vendorID)
	if err == nil {
		return user.DisplayName
	}
	return ""
}
