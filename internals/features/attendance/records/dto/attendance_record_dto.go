package dto

import (
	"time"

	"github.com/google/uuid"

	"runcrew_backend/internals/features/attendance/records/model"
	"runcrew_backend/internals/helpers/kst"
)

type CreateAttendanceRecordRequest struct {
	AttendanceRecordUserID     *uuid.UUID `json:"attendance_record_user_id"` // staff may log for someone else
	AttendanceRecordLocation   *string    `json:"attendance_record_location" validate:"omitempty,max=100"`
	AttendanceRecordAttendedAt time.Time  `json:"attendance_record_attended_at" validate:"required"`
	AttendanceRecordIsHost     bool       `json:"attendance_record_is_host"`
}

// UpdateAttendanceRecordRequest covers operator corrections (time/location/host flag).
type UpdateAttendanceRecordRequest struct {
	AttendanceRecordLocation   *string    `json:"attendance_record_location" validate:"omitempty,max=100"`
	AttendanceRecordAttendedAt *time.Time `json:"attendance_record_attended_at"`
	AttendanceRecordIsHost     *bool      `json:"attendance_record_is_host"`
}

type AttendanceRecordResponse struct {
	AttendanceRecordID            string  `json:"attendance_record_id"`
	AttendanceRecordCrewID        string  `json:"attendance_record_crew_id"`
	AttendanceRecordUserID        string  `json:"attendance_record_user_id"`
	AttendanceRecordLocation      *string `json:"attendance_record_location,omitempty"`
	AttendanceRecordAttendedAt    string  `json:"attendance_record_attended_at"`     // UTC, RFC3339
	AttendanceRecordAttendedAtKST string  `json:"attendance_record_attended_at_kst"` // KST wall clock
	AttendanceRecordIsHost        bool    `json:"attendance_record_is_host"`
}

func (r *CreateAttendanceRecordRequest) ToModel(crewID, userID uuid.UUID) *model.AttendanceRecordModel {
	return &model.AttendanceRecordModel{
		AttendanceRecordCrewID:     crewID,
		AttendanceRecordUserID:     userID,
		AttendanceRecordLocation:   r.AttendanceRecordLocation,
		AttendanceRecordAttendedAt: r.AttendanceRecordAttendedAt.UTC(),
		AttendanceRecordIsHost:     r.AttendanceRecordIsHost,
	}
}

func ToAttendanceRecordResponse(m *model.AttendanceRecordModel) *AttendanceRecordResponse {
	return &AttendanceRecordResponse{
		AttendanceRecordID:            m.AttendanceRecordID.String(),
		AttendanceRecordCrewID:        m.AttendanceRecordCrewID.String(),
		AttendanceRecordUserID:        m.AttendanceRecordUserID.String(),
		AttendanceRecordLocation:      m.AttendanceRecordLocation,
		AttendanceRecordAttendedAt:    m.AttendanceRecordAttendedAt.UTC().Format(time.RFC3339),
		AttendanceRecordAttendedAtKST: kst.FromUTC(m.AttendanceRecordAttendedAt).Format("2006-01-02 15:04"),
		AttendanceRecordIsHost:        m.AttendanceRecordIsHost,
	}
}

func ToAttendanceRecordResponseList(models []model.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAttendanceRecordResponse(&models[i]))
	}
	return out
}
