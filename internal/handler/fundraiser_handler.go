package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/internal/service"
	"github.com/givehub/backend/pkg/utils"
)

type FundraiserHandler struct {
	fundraiserService *service.FundraiserService
	validator         *utils.Validator
	logger            *zap.Logger
}

func NewFundraiserHandler(fundraiserService *service.FundraiserService, validator *utils.Validator, logger *zap.Logger) *FundraiserHandler {
	return &FundraiserHandler{
		fundraiserService: fundraiserService,
		validator:         validator,
		logger:            logger,
	}
}

// Create reads the multipart form. The creator comes from the auth
// gate, not the body.
func (h *FundraiserHandler) Create(c *fiber.Ctx) error {
	var req models.FundraiserRequest
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

	image, err := c.FormFile("image")
	if err != nil {
		return respondError(c, h.logger, models.ErrImageRequired)
	}

	fundraiser, err := h.fundraiserService.Create(userID, req, image)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fundraiser, "Fundraiser created successfully"))
}

func (h *FundraiserHandler) List(c *fiber.Ctx) error {
	fundraisers, err := h.fundraiserService.List()
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(fundraisers, ""))
}

func (h *FundraiserHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondError(c, h.logger, models.ErrFundraiserNotFound)
	}

	fundraiser, err := h.fundraiserService.GetByID(uint(id))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(fundraiser, ""))
}
