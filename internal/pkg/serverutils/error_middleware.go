package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notealog-ai-be/internal/apperror"
	"notealog-ai-be/internal/service"
)

// ErrorHandlerMiddleware translates typed service failures into HTTP
// statuses. Services never swallow errors; this is the single place they
// become responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var notFound *apperror.NotFoundError
		var noSimilar *apperror.NoSimilarDocumentsError
		var embeddingErr *apperror.EmbeddingError
		var generationErr *apperror.GenerationError
		var storeErr *apperror.StoreError

		switch {
		case errors.As(err, &notFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFound.Error()))
		case errors.As(err, &noSimilar):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(noSimilar.Error()))
		case errors.Is(err, apperror.ErrInvalidInput):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrRunInProgress):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case errors.As(err, &embeddingErr), errors.As(err, &generationErr):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(err.Error()))
		case errors.As(err, &storeErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(storeErr.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error()))
		}
	}
}
