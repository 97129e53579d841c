package apiValidator

import (
	"planner/dto"

	"github.com/gofiber/fiber/v2"
)

// ============ User Validators ============

func CreateUser() fiber.Handler { return body[dto.CreateUserRequest]() }

func UpdateUser() fiber.Handler { return body[dto.UpdateUserRequest]() }

// ============ Course Validators ============

func CreateCourse() fiber.Handler { return body[dto.CreateCourseRequest]() }

func UpdateCourse() fiber.Handler { return body[dto.UpdateCourseRequest]() }

// ============ Module Validators ============

func CreateModule() fiber.Handler { return body[dto.CreateModuleRequest]() }

func UpdateModule() fiber.Handler { return body[dto.UpdateModuleRequest]() }

// ============ Class Schedule Validators ============

func CreateClassSchedule() fiber.Handler { return body[dto.CreateClassScheduleRequest]() }

func UpdateClassSchedule() fiber.Handler { return body[dto.UpdateClassScheduleRequest]() }

// ============ Assessment Validators ============

func CreateAssessment() fiber.Handler { return body[dto.CreateAssessmentRequest]() }

func UpdateAssessment() fiber.Handler { return body[dto.UpdateAssessmentRequest]() }
