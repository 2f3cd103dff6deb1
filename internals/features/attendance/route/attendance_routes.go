package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "runcrew_backend/internals/features/attendance/analytics/controller"
	recordController "runcrew_backend/internals/features/attendance/records/controller"
)

// AttendanceUserRoutes: logging + analytics for crew members (under /api/u).
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	recordCtrl := recordController.NewAttendanceRecordController(db)
	analyticsCtrl := analyticsController.NewAnalyticsController(db)

	crews := r.Group("/crews")
	crews.Post("/:crewId/attendance-records", recordCtrl.CreateRecord)
	crews.Get("/:crewId/attendance-records", recordCtrl.ListRecords)
	crews.Delete("/:crewId/attendance-records/:recordId", recordCtrl.DeleteRecord)

	crews.Get("/:crewId/analytics/monthly", analyticsCtrl.GetMonthlyAnalytics)
	crews.Get("/:crewId/meetings", analyticsCtrl.GetMeetingsByDay)
}

// AttendanceAdminRoutes: operator corrections (under /api/a); the staff
// guard sets crew_role, which lets CreateRecord log for another member.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	recordCtrl := recordController.NewAttendanceRecordController(db)

	crews := r.Group("/crews")
	crews.Post("/:crewId/attendance-records", recordCtrl.CreateRecord)
	crews.Patch("/:crewId/attendance-records/:recordId", recordCtrl.UpdateRecord)
}
