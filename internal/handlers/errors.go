package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ensabun/internal/apperr"
)

// ErrorHandler renders errors that escape a handler, including unmatched
// routes and recovered panics, as envelopes.
func (r Responder) ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Message: "Endpoint not found"})
		default:
			if fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(Envelope{Success: false, Message: fe.Message})
			}
		}
	}
	return r.Fail(c, apperr.Store("Internal server error", err))
}
