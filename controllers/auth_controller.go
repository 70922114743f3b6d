package controllers

import (
	"github.com/gin-gonic/gin"

	"marketplace/models"
	"marketplace/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{authService: services.NewAuthService()}
}

// Register godoc
// @Summary Register new user
// @Description Register a customer or vendor account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Registered successfully",
		Data:    result,
	})
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Logged in successfully",
		Data:    result,
	})
}

// GetProfile godoc
// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := ctrl.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    user,
	})
}
