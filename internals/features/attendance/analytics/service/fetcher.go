package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	"runcrew_backend/internals/features/attendance/records/model"
)

// RosterMember is one ACTIVE membership row joined with the display name.
type RosterMember struct {
	UserID uuid.UUID
	Name   string
}

// RecordFetcher is the data-source boundary for attendance rows. The store
// filter is an approximate UTC range; callers must reclassify exactly.
type RecordFetcher interface {
	FetchInRange(ctx context.Context, crewID uuid.UUID, startUTC, endUTC time.Time, memberIDs []uuid.UUID) ([]model.AttendanceRecordModel, error)
}

// MemberRoster resolves the crew's current ACTIVE member set.
type MemberRoster interface {
	ActiveMembers(ctx context.Context, crewID uuid.UUID) ([]RosterMember, error)
	IsMember(ctx context.Context, crewID, userID uuid.UUID) (bool, error)
}

/* ===============================
   GORM implementations
=================================*/

type GormRecordFetcher struct {
	DB *gorm.DB
}

func (f *GormRecordFetcher) FetchInRange(ctx context.Context, crewID uuid.UUID, startUTC, endUTC time.Time, memberIDs []uuid.UUID) ([]model.AttendanceRecordModel, error) {
	var rows []model.AttendanceRecordModel
	q := f.DB.WithContext(ctx).
		Where("attendance_record_crew_id = ?", crewID).
		Where("attendance_record_attended_at >= ? AND attendance_record_attended_at < ?", startUTC, endUTC)
	if len(memberIDs) > 0 {
		q = q.Where("attendance_record_user_id IN ?", memberIDs)
	} else {
		// empty ACTIVE roster → empty snapshot, no need to hit the table
		return nil, nil
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch attendance records: %v", ErrDataSource, err)
	}
	return rows, nil
}

type GormMemberRoster struct {
	DB *gorm.DB
}

func (r *GormMemberRoster) ActiveMembers(ctx context.Context, crewID uuid.UUID) ([]RosterMember, error) {
	var out []RosterMember
	err := r.DB.WithContext(ctx).
		Table("crew_members").
		Select("crew_members.crew_member_user_id AS user_id, users.user_name AS name").
		Joins("LEFT JOIN users ON users.user_id = crew_members.crew_member_user_id AND users.user_deleted_at IS NULL").
		Where("crew_members.crew_member_crew_id = ?", crewID).
		Where("crew_members.crew_member_status = ?", constants.MemberStatusActive).
		Where("crew_members.crew_member_deleted_at IS NULL").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch active members: %v", ErrDataSource, err)
	}
	return out, nil
}

func (r *GormMemberRoster) IsMember(ctx context.Context, crewID, userID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).
		Table("crew_members").
		Where("crew_member_crew_id = ? AND crew_member_user_id = ?", crewID, userID).
		Where("crew_member_deleted_at IS NULL").
		Count(&cnt).Error
	if err != nil {
		return false, fmt.Errorf("%w: check membership: %v", ErrDataSource, err)
	}
	return cnt > 0, nil
}
