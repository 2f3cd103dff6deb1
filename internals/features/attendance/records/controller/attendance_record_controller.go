package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	"runcrew_backend/internals/features/attendance/records/dto"
	"runcrew_backend/internals/features/attendance/records/model"
	helper "runcrew_backend/internals/helpers"
)

type AttendanceRecordController struct {
	DB *gorm.DB
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db}
}

var validate = validator.New()

// canLogForMember: everyone logs for themselves; only an owner/staff role
// may log on behalf of someone else.
func canLogForMember(crewRole string, requester, target uuid.UUID) bool {
	if target == uuid.Nil || target == requester {
		return true
	}
	for _, r := range constants.StaffRoles {
		if crewRole == r {
			return true
		}
	}
	return false
}

// 🟢 POST /api/u/crews/:crewId/attendance-records (self)
//    POST /api/a/crews/:crewId/attendance-records (staff, any member)
func (ctrl *AttendanceRecordController) CreateRecord(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// default: log for yourself; logging for another member requires the
	// crew_role local, which only the staff-guarded admin group sets
	targetUser := userID
	if req.AttendanceRecordUserID != nil && *req.AttendanceRecordUserID != uuid.Nil {
		role, _ := c.Locals("crew_role").(string)
		if !canLogForMember(role, userID, *req.AttendanceRecordUserID) {
			return helper.JsonError(c, fiber.StatusForbidden, "Only crew staff can log for another member")
		}
		targetUser = *req.AttendanceRecordUserID
	}

	record := req.ToModel(crewID, targetUser)
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance record")
	}

	return helper.JsonCreated(c, "Attendance recorded", dto.ToAttendanceRecordResponse(record))
}

// 🔵 GET /api/u/crews/:crewId/attendance-records?from=&to=&user_id=
func (ctrl *AttendanceRecordController) ListRecords(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_crew_id = ?", crewID)

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be RFC3339")
		}
		q = q.Where("attendance_record_attended_at >= ?", from.UTC())
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be RFC3339")
		}
		q = q.Where("attendance_record_attended_at < ?", to.UTC())
	}
	if raw := c.Query("user_id"); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user_id")
		}
		q = q.Where("attendance_record_user_id = ?", uid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count records")
	}

	var rows []model.AttendanceRecordModel
	if err := q.
		Order("attendance_record_attended_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load records")
	}

	return helper.JsonList(c, "", dto.ToAttendanceRecordResponseList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/crews/:crewId/attendance-records/:recordId — operator correction
func (ctrl *AttendanceRecordController) UpdateRecord(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(c.Params("recordId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var req dto.UpdateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.AttendanceRecordLocation != nil {
		updates["attendance_record_location"] = *req.AttendanceRecordLocation
	}
	if req.AttendanceRecordAttendedAt != nil {
		updates["attendance_record_attended_at"] = req.AttendanceRecordAttendedAt.UTC()
	}
	if req.AttendanceRecordIsHost != nil {
		updates["attendance_record_is_host"] = *req.AttendanceRecordIsHost
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	updates["attendance_record_updated_at"] = time.Now()

	res := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_id = ? AND attendance_record_crew_id = ?", recordID, crewID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	var record model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_id = ?", recordID).First(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload record")
	}
	return helper.JsonUpdated(c, "Record updated", dto.ToAttendanceRecordResponse(&record))
}

// 🔴 DELETE /api/u/crews/:crewId/attendance-records/:recordId — soft delete;
// aggregates must stop counting this row immediately.
func (ctrl *AttendanceRecordController) DeleteRecord(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(c.Params("recordId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var record model.AttendanceRecordModel
	err = ctrl.DB.
		Where("attendance_record_id = ? AND attendance_record_crew_id = ?", recordID, crewID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load record")
	}
	if record.AttendanceRecordUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only delete your own record")
	}

	if err := ctrl.DB.Delete(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete record")
	}
	return helper.JsonDeleted(c, "Record deleted", fiber.Map{"attendance_record_id": recordID})
}
