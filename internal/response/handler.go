package response

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewErrorHandler: Merkezi hata yakalayıcı. AppError'ları zarfa çevirir,
// beklenmeyen hataları 500 olarak maskeler. devMode açıkken 500 yanıtlarına
// hata detayı eklenir, production'da asla sızdırılmaz.
func NewErrorHandler(devMode bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.StatusCode).JSON(Envelope{
				Status:     "error",
				StatusCode: appErr.StatusCode,
				Message:    appErr.Message,
				Error: &ErrorBody{
					Type:     appErr.Type,
					Resource: appErr.Resource,
					Details:  appErr.Details,
				},
				Timestamp: Timestamp(),
			})
		}

		// Unique index ihlali servis katmanından kaçtıysa burada yakala
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(Envelope{
				Status:     "error",
				StatusCode: fiber.StatusConflict,
				Message:    "Resource already exists",
				Error:      &ErrorBody{Type: TypeConflict},
				Timestamp:  Timestamp(),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < 500 {
			return c.Status(fiberErr.Code).JSON(Envelope{
				Status:     "error",
				StatusCode: fiberErr.Code,
				Message:    fiberErr.Message,
				Error:      &ErrorBody{Type: typeForStatus(fiberErr.Code)},
				Timestamp:  Timestamp(),
			})
		}

		log.Println("Beklenmeyen hata:", err)
		body := &ErrorBody{Type: TypeInternal}
		if devMode {
			body.Details = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
			Status:     "error",
			StatusCode: fiber.StatusInternalServerError,
			Message:    "Internal Server Error",
			Error:      body,
			Timestamp:  Timestamp(),
		})
	}
}

func typeForStatus(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return TypeNotFound
	case fiber.StatusUnauthorized:
		return TypeUnauthorized
	case fiber.StatusForbidden:
		return TypeForbidden
	case fiber.StatusConflict:
		return TypeConflict
	default:
		return TypeValidation
	}
}
