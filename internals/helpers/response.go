package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JSON envelopes follow the API contract: successes carry "message" plus
// payload keys supplied by the controller, errors carry "message" and an
// optional "error" detail.

func Success(c *fiber.Ctx, message string, payload fiber.Map) error {
	return SuccessWithCode(c, fiber.StatusOK, message, payload)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, payload fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"message": message})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, detail string) error {
	return c.Status(code).JSON(fiber.Map{"message": message, "error": detail})
}

// ValidationError renders validator.v10 failures as a field → tag map.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"error":   errorsMap,
	})
}
