package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

const internalErrorMessage = "Internal Server Error"

// writeError traduce errores de dominio a HTTP: entrada inválida 400, no encontrado 404,
// el resto 500 con mensaje genérico (el detalle solo va al log).
func writeError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		msg := domain.ClientMessage(err)
		code := "VALIDATION"
		switch msg {
		case domain.MsgIDRequired:
			code = "MISSING_ID"
		case domain.MsgInvalidID:
			code = "INVALID_ID"
		case "":
			msg = "invalid input"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
	case errors.Is(err, domain.ErrNotFound):
		msg := domain.ClientMessage(err)
		if msg == "" {
			msg = "not found"
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	default:
		log.Error().Err(err).Str("op", op).Str("request_id", GetRequestID(c)).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalErrorMessage})
	}
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, cuerpos inválidos, panics recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", GetRequestID(c)).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalErrorMessage})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "TOO_LARGE"
	default:
		return "BAD_REQUEST"
	}
}
