package controllers

import (
	"planner/dto"
	"planner/middleware"
	"planner/models"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const listAssessmentsSQL = `SELECT a.*, m.name AS module_name
	FROM assessments a
	LEFT JOIN modules m ON m.id = a.module_id`

const updateAssessmentSQL = `UPDATE assessments SET
	title = COALESCE(?, title),
	type = COALESCE(?, type),
	due_date = COALESCE(?, due_date),
	module_id = COALESCE(?, module_id)
	WHERE id = ?`

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

// GET /api/assessments
func (ac *AssessmentController) ListAssessments(c *fiber.Ctx) error {
	assessments := make([]models.AssessmentRow, 0)
	if err := ac.DB.Raw(listAssessmentsSQL).Scan(&assessments).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(assessments)
}

// POST /api/assessments
func (ac *AssessmentController) CreateAssessment(c *fiber.Ctx) error {
	reqData := c.Locals(apiValidator.BodyKey).(*dto.CreateAssessmentRequest)

	assessment := reqData.ToModel()
	if err := ac.DB.Create(assessment).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return created(c, assessment.ID)
}

// PUT /api/assessments/:id
func (ac *AssessmentController) UpdateAssessment(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	reqData := c.Locals(apiValidator.BodyKey).(*dto.UpdateAssessmentRequest)

	return changes(c, ac.DB.Exec(updateAssessmentSQL, append(reqData.Args(), id)...))
}

// DELETE /api/assessments/:id
func (ac *AssessmentController) DeleteAssessment(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	return changes(c, ac.DB.Delete(&models.Assessment{}, id))
}
