package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "runcrew_backend/internals/features/users/auth/controller"
	userController "runcrew_backend/internals/features/users/user/controller"
	middlewares "runcrew_backend/internals/middlewares"
)

// AuthRoutes: public register/login with strict limiters.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// UserRoutes: profile endpoints behind JWT.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Patch("/me", ctrl.UpdateMe)
}
