package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"runcrew_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain.
// Order: recovery → cors → logger → db locals → global limiter.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(DBMiddleware(db))
	app.Use(GlobalRateLimiter())
}
