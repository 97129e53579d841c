package apiRoutes

import (
	"planner/controllers"
	validators "planner/validators/apiValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAPIRoutes mounts the liveness check and the CRUD routes of every
// resource under /api. All controllers share the one store handle.
func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	api.Get("/", controllers.Health)

	users := controllers.NewUserController(db)
	userGroup := api.Group("/users")
	userGroup.Get("/", users.ListUsers)
	userGroup.Post("/", validators.CreateUser(), users.CreateUser)
	userGroup.Put("/:id", validators.ResourceID(), validators.UpdateUser(), users.UpdateUser)
	userGroup.Delete("/:id", validators.ResourceID(), users.DeleteUser)

	courses := controllers.NewCourseController(db)
	courseGroup := api.Group("/courses")
	courseGroup.Get("/", courses.ListCourses)
	courseGroup.Post("/", validators.CreateCourse(), courses.CreateCourse)
	courseGroup.Put("/:id", validators.ResourceID(), validators.UpdateCourse(), courses.UpdateCourse)
	courseGroup.Delete("/:id", validators.ResourceID(), courses.DeleteCourse)

	modules := controllers.NewModuleController(db)
	moduleGroup := api.Group("/modules")
	moduleGroup.Get("/", modules.ListModules)
	moduleGroup.Post("/", validators.CreateModule(), modules.CreateModule)
	moduleGroup.Put("/:id", validators.ResourceID(), validators.UpdateModule(), modules.UpdateModule)
	moduleGroup.Delete("/:id", validators.ResourceID(), modules.DeleteModule)

	schedules := controllers.NewClassScheduleController(db)
	scheduleGroup := api.Group("/class_schedules")
	scheduleGroup.Get("/", schedules.ListClassSchedules)
	scheduleGroup.Post("/", validators.CreateClassSchedule(), schedules.CreateClassSchedule)
	scheduleGroup.Put("/:id", validators.ResourceID(), validators.UpdateClassSchedule(), schedules.UpdateClassSchedule)
	scheduleGroup.Delete("/:id", validators.ResourceID(), schedules.DeleteClassSchedule)

	assessments := controllers.NewAssessmentController(db)
	assessmentGroup := api.Group("/assessments")
	assessmentGroup.Get("/", assessments.ListAssessments)
	assessmentGroup.Post("/", validators.CreateAssessment(), assessments.CreateAssessment)
	assessmentGroup.Put("/:id", validators.ResourceID(), validators.UpdateAssessment(), assessments.UpdateAssessment)
	assessmentGroup.Delete("/:id", validators.ResourceID(), assessments.DeleteAssessment)
}
