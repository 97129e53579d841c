package apiValidator

import (
	"strconv"
	"strings"

	"planner/middleware"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validators and read by the controllers.
const (
	IDKey   = "resourceID"
	BodyKey = "validatedBody"
)

// ResourceID reads the :id path parameter. Anything that is not a positive
// integer cannot match a row and is stored as 0.
func ResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 63)
		if err != nil {
			id = 0
		}
		c.Locals(IDKey, uint(id))
		return c.Next()
	}
}

// body decodes the JSON request body into a new T. An empty body decodes to
// a T with every field unset.
func body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.ErrorResponse(c, err)
			}
		}
		c.Locals(BodyKey, reqData)
		return c.Next()
	}
}
