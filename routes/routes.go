package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace/controllers"
	"marketplace/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	checkoutCtrl := controllers.NewCheckoutController()
	orderCtrl := controllers.NewOrderController()
	vendorCtrl := controllers.NewVendorController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", productCtrl.GetCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:productId", cartCtrl.UpdateItemQuantity)
	router.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
	}

	vendor := router.Group("/vendor")
	vendor.Use(middleware.AuthMiddleware(), middleware.VendorMiddleware())
	{
		vendor.GET("/dashboard", vendorCtrl.GetDashboard)

		vendor.GET("/products", productCtrl.GetVendorProducts)
		vendor.POST("/products", productCtrl.CreateProduct)
		vendor.PATCH("/products/:id", productCtrl.UpdateProduct)
		vendor.DELETE("/products/:id", productCtrl.DeleteProduct)
		vendor.POST("/products/images", productCtrl.UploadProductImage)

		vendor.GET("/orders", orderCtrl.GetVendorOrders)
		vendor.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}
