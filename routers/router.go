package routers

import (
	"planner/config"
	"planner/middleware"
	"planner/routers/apiRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewApp builds the HTTP application around an open store handle.
func NewApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "planner",
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})

	middleware.Setup(app, cfg)

	apiRoutes.SetupAPIRoutes(app, db)

	// Serve the front-end; registered last so /api wins
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return app
}
