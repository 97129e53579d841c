package controllers

import (
	"planner/dto"
	"planner/middleware"
	"planner/models"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const listModulesSQL = `SELECT m.*, c.name AS course_name
	FROM modules m
	LEFT JOIN courses c ON c.id = m.course_id`

const updateModuleSQL = `UPDATE modules SET
	name = COALESCE(?, name),
	code = COALESCE(?, code),
	credits = COALESCE(?, credits),
	course_id = COALESCE(?, course_id)
	WHERE id = ?`

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// GET /api/modules
func (mc *ModuleController) ListModules(c *fiber.Ctx) error {
	modules := make([]models.ModuleRow, 0)
	if err := mc.DB.Raw(listModulesSQL).Scan(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(modules)
}

// POST /api/modules
func (mc *ModuleController) CreateModule(c *fiber.Ctx) error {
	reqData := c.Locals(apiValidator.BodyKey).(*dto.CreateModuleRequest)

	module := reqData.ToModel()
	if err := mc.DB.Create(module).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return created(c, module.ID)
}

// PUT /api/modules/:id
func (mc *ModuleController) UpdateModule(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	reqData := c.Locals(apiValidator.BodyKey).(*dto.UpdateModuleRequest)

	return changes(c, mc.DB.Exec(updateModuleSQL, append(reqData.Args(), id)...))
}

// DELETE /api/modules/:id, cascading to its schedules and assessments
func (mc *ModuleController) DeleteModule(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	return changes(c, mc.DB.Delete(&models.Module{}, id))
}
