package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/services"
)

// parseRequest decodes the JSON body into req and validates it. When ok is false the
// 400 response has already been written and err is what the handler should return.
func parseRequest(c *fiber.Ctx, validate *validator.Validate, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		errorMessages := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// respondError maps service errors to status codes. Unknown errors are logged and
// answered with 500 and fallback as the message.
func respondError(c *fiber.Ctx, logger *zap.SugaredLogger, err error, fallback string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidLink),
		errors.Is(err, services.ErrQuantityOutOfRange),
		errors.Is(err, services.ErrInsufficientBalance):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidUTR),
		errors.Is(err, services.ErrEmptyPrompt):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		logger.Errorw(fallback, "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{
			"message": fallback,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}
