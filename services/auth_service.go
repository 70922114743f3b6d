package services

import (
	"context"
	"errors"

	"marketplace/models"
	"marketplace/repositories"
	"marketplace/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        role,
		DisplayName: req.DisplayName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if role == "vendor" {
		businessName := req.DisplayName
		if businessName == "" {
			businessName = "My Store"
		}
		profile := &models.VendorProfile{
			VendorID:     user.ID,
			BusinessName: businessName,
		}
		if err := s.userRepo.CreateVendorProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
