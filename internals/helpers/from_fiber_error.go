package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an error bubbled out of a service (usually a
// *fiber.Error) into a consistent JSON response via helper.Error.
// Anything else falls back to 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return ErrorWithDetails(c, fiber.StatusInternalServerError, "Server error", err.Error())
}
