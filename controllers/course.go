package controllers

import (
	"planner/dto"
	"planner/middleware"
	"planner/models"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const listCoursesSQL = `SELECT co.*, u.first_name || ' ' || u.last_name AS user_name
	FROM courses co
	LEFT JOIN users u ON u.id = co.user_id`

const updateCourseSQL = `UPDATE courses SET
	name = COALESCE(?, name),
	type = COALESCE(?, type),
	user_id = COALESCE(?, user_id)
	WHERE id = ?`

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GET /api/courses
func (cc *CourseController) ListCourses(c *fiber.Ctx) error {
	courses := make([]models.CourseRow, 0)
	if err := cc.DB.Raw(listCoursesSQL).Scan(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(courses)
}

// POST /api/courses
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals(apiValidator.BodyKey).(*dto.CreateCourseRequest)

	course := reqData.ToModel()
	if err := cc.DB.Create(course).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return created(c, course.ID)
}

// PUT /api/courses/:id
func (cc *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	reqData := c.Locals(apiValidator.BodyKey).(*dto.UpdateCourseRequest)

	return changes(c, cc.DB.Exec(updateCourseSQL, append(reqData.Args(), id)...))
}

// DELETE /api/courses/:id
//
// Modules of the course go with it; users enrolled on it keep their row with
// course_id set to NULL.
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	return changes(c, cc.DB.Delete(&models.Course{}, id))
}
