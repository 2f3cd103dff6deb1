// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "runcrew_backend/internals/features/attendance/route"
	crewRoute "runcrew_backend/internals/features/crews/crew/route"
	userRoute "runcrew_backend/internals/features/users/route"
	authMiddleware "runcrew_backend/internals/middlewares/auth"
	featuresMiddleware "runcrew_backend/internals/middlewares/features"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	userRoute.UserRoutes(private, db)
	crewRoute.CrewUserRoutes(private, db)
	attendanceRoute.AttendanceUserRoutes(private, db)

	// ===================== ADMIN (crew staff) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + crew staff)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsCrewStaff(db),
	)
	crewRoute.CrewAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
