package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse reports a failed statement. Store errors are not classified:
// constraint violations and I/O failures share one status and the raw message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	return JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": err.Error()})
}

func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorHandler is installed as the app's fiber.Config.ErrorHandler so
// unmatched routes and recovered panics use the same envelope as handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return JsonResponse(c, code, fiber.Map{"error": err.Error()})
}
