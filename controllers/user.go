package controllers

import (
	"planner/dto"
	"planner/middleware"
	"planner/models"
	"planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const listUsersSQL = `SELECT u.*, c.name AS course_name
	FROM users u
	LEFT JOIN courses c ON c.id = u.course_id`

const updateUserSQL = `UPDATE users SET
	email = COALESCE(?, email),
	password_hash = COALESCE(?, password_hash),
	first_name = COALESCE(?, first_name),
	middle_names = COALESCE(?, middle_names),
	last_name = COALESCE(?, last_name),
	date_of_birth = COALESCE(?, date_of_birth),
	address = COALESCE(?, address),
	course_id = COALESCE(?, course_id)
	WHERE id = ?`

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users := make([]models.UserRow, 0)
	if err := uc.DB.Raw(listUsersSQL).Scan(&users).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(users)
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	reqData := c.Locals(apiValidator.BodyKey).(*dto.CreateUserRequest)

	user := reqData.ToModel()
	if err := uc.DB.Create(user).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return created(c, user.ID)
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	reqData := c.Locals(apiValidator.BodyKey).(*dto.UpdateUserRequest)

	return changes(c, uc.DB.Exec(updateUserSQL, append(reqData.Args(), id)...))
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id := resourceID(c)
	if id == 0 {
		return noChanges(c)
	}
	return changes(c, uc.DB.Delete(&models.User{}, id))
}
