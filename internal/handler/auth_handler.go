package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/controller"
	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/pkg/utils"
)

type AuthHandler struct {
	authController *controller.AuthController
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewAuthHandler(authController *controller.AuthController, validator *utils.Validator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authController: authController,
		validator:      validator,
		logger:         logger,
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if verr := h.validator.Struct(req); verr != nil {
		return respondError(c, h.logger, verr)
	}

	resp, err := h.authController.Signup(req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered successfully"))
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req models.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if verr := h.validator.Struct(req); verr != nil {
		return respondError(c, h.logger, verr)
	}

	resp, err := h.authController.Signin(req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}
