package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel is one "I ran with the crew" entry.
// attendance_record_attended_at is always stored in UTC; every calendar
// reading (day/month/weekday) is derived in KST by the analytics service.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id"`

	AttendanceRecordCrewID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_record_crew_time;column:attendance_record_crew_id"`
	AttendanceRecordUserID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_user_id"`

	AttendanceRecordLocation *string `gorm:"type:varchar(100);column:attendance_record_location"`

	AttendanceRecordAttendedAt time.Time `gorm:"not null;index:idx_attendance_record_crew_time;column:attendance_record_attended_at"`

	AttendanceRecordIsHost bool `gorm:"not null;default:false;column:attendance_record_is_host"`

	AttendanceRecordCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time     `gorm:"column:attendance_record_updated_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
