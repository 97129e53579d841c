package controllers

import (
	"planner/dto"
	"planner/middleware"
	"planner/models"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const listClassSchedulesSQL = `SELECT s.*, m.name AS module_name
	FROM class_schedules s
	LEFT JOIN modules m ON m.id = s.module_id`

const updateClassScheduleSQL = `UPDATE class_schedules SET
	day_of_week = COALESCE(?, day_of_week),
	start_time = COALESCE(?, start_time),
	end_time = COALESCE(?, end_time),
	location = COALESCE(?, location),
	module_id = COALESCE(?, module_id)
	WHERE id = ?`

type ClassScheduleController struct {
	DB *gorm.DB
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{DB: db}
}

// GET /api/class_schedules
func (sc *ClassScheduleController) ListClassSchedules(c *fiber.Ctx) error {
	schedules := make([]models.ClassScheduleRow, 0)
	if err := sc.DB.Raw(listClassSchedulesSQL).Scan(&schedules).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(schedules)
}

// POST /api/class_schedules
func (sc *ClassScheduleController) CreateClassSchedule(c *fiber.Ctx) error {
	reqData := c.Locals(apiValidator.BodyKey).(*dto.CreateClassScheduleRequest)

	schedule := reqData.ToModel()
	if err := sc.DB.Create(schedule).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return created(c, schedule.ID)
}

// PUT /api/class_schedules/:id
func (sc *ClassScheduleController) UpdateClassSchedule(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	reqData := c.Locals(apiValidator.BodyKey).(*dto.UpdateClassScheduleRequest)

	return changes(c, sc.DB.Exec(updateClassScheduleSQL, append(reqData.Args(), id)...))
}

// DELETE /api/class_schedules/:id
func (sc *ClassScheduleController) DeleteClassSchedule(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	return changes(c, sc.DB.Delete(&models.ClassSchedule{}, id))
}
