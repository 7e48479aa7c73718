package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
	"go.uber.org/zap"
)

const msgInvalidBody = "Invalid request body"

// ErrorHandler renders every error that escapes a handler as
// {"detail": "..."}. Unexpected errors are logged and hidden behind a 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(models.ErrorResponse(fe.Message))
		}

		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
}

// httpError maps service errors onto HTTP statuses.
func httpError(err error) error {
	status := 0
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInactiveUser):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrStorageDisabled):
		status = fiber.StatusServiceUnavailable
	default:
		return err
	}
	return fiber.NewError(status, err.Error())
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, v *utils.Validator, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest(msgInvalidBody)
	}
	if err := v.Struct(out); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, badRequest("Invalid " + param)
	}
	return uint(id), nil
}

// parsePage reads skip and limit from the query string.
func parsePage(c *fiber.Ctx, v *utils.Validator) (models.Page, error) {
	page := models.DefaultPage()

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return page, badRequest("skip must be an integer")
		}
		page.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, badRequest("limit must be an integer")
		}
		page.Limit = limit
	}

	if err := v.Struct(page); err != nil {
		return page, badRequest(err.Error())
	}
	return page, nil
}

// optionalID reads an optional positive integer query parameter.
func optionalID(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, badRequest(key + " must be a positive integer")
	}
	v := uint(id)
	return &v, nil
}
