package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/internal/service"
	"github.com/givehub/backend/pkg/utils"
)

type DonationHandler struct {
	donationService *service.DonationService
	validator       *utils.Validator
	logger          *zap.Logger
}

func NewDonationHandler(donationService *service.DonationService, validator *utils.Validator, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		validator:       validator,
		logger:          logger,
	}
}

func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var req models.DonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if verr := h.validator.Struct(req); verr != nil {
		return respondError(c, h.logger, verr)
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("No token, authorization denied"))
	}

	donation, err := h.donationService.Create(userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(donation, "Donation recorded successfully"))
}

func (h *DonationHandler) List(c *fiber.Ctx) error {
	donations, err := h.donationService.List()
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(donations, ""))
}

func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondError(c, h.logger, models.ErrDonationNotFound)
	}

	donation, err := h.donationService.GetByID(uint(id))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(donation, ""))
}
