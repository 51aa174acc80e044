package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"course-support-agent/pkg/rag/index"
	"course-support-agent/pkg/rag/response"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses so that
// controllers and services can return plain errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		switch {
		case errors.Is(err, index.ErrRetrievalUnavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, response.ErrGenerationFailed):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error()))
		}
	}
}
