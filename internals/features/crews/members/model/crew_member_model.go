package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrewMemberModel struct {
	CrewMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:crew_member_id"`

	CrewMemberCrewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_crew_member_crew_user;column:crew_member_crew_id"`
	CrewMemberUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_crew_member_crew_user;column:crew_member_user_id"`

	CrewMemberRole string `gorm:"type:varchar(20);not null;default:'member';column:crew_member_role"`

	// ACTIVE members are the denominator population for attendance rates.
	CrewMemberStatus string `gorm:"type:varchar(20);not null;default:'ACTIVE';column:crew_member_status"`

	CrewMemberJoinedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;column:crew_member_joined_at"`

	CrewMemberCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:crew_member_created_at"`
	CrewMemberUpdatedAt *time.Time     `gorm:"column:crew_member_updated_at"`
	CrewMemberDeletedAt gorm.DeletedAt `gorm:"column:crew_member_deleted_at;index"`
}

func (CrewMemberModel) TableName() string {
	return "crew_members"
}
