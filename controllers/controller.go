package controllers

import (
	"planner/middleware"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "API is running"})
}

func resourceID(c *fiber.Ctx) uint {
	id, _ := c.Locals(apiValidator.IDKey).(uint)
	return id
}

func created(c *fiber.Ctx, id uint) error {
	return c.JSON(fiber.Map{"id": id})
}

// changes reports the affected-row count of an update or delete. Zero is
// how a missing id shows up; it is not an error.
func changes(c *fiber.Ctx, result *gorm.DB) error {
	if result.Error != nil {
		return middleware.ErrorResponse(c, result.Error)
	}
	return c.JSON(fiber.Map{"changes": result.RowsAffected})
}

func noChanges(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"changes": 0})
}
