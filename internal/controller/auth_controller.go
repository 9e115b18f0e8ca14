package controller

import (
	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	return c.authService.Signup(req)
}

func (c *AuthController) Signin(req models.SigninRequest) (*models.AuthResponse, error) {
	return c.authService.Signin(req)
}
