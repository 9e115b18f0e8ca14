package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/givehub/backend/internal/models"
)

// respondError classifies a failure and writes the response. Anything
// unclassified is an internal failure: logged with detail, surfaced as
// a generic message so store internals never reach the client.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationResponse(verr.Fields))
	}

	switch {
	case errors.Is(err, models.ErrEmailExists),
		errors.Is(err, models.ErrImageRequired),
		errors.Is(err, models.ErrImageTooLarge),
		errors.Is(err, models.ErrImageType):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrFundraiserNotFound),
		errors.Is(err, models.ErrDonationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}

	logger.Error("request failed",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error"))
}
