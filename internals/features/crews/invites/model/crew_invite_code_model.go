package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrewInviteCodeModel struct {
	CrewInviteCodeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:crew_invite_code_id"`

	CrewInviteCodeCrewID uuid.UUID `gorm:"type:uuid;not null;index;column:crew_invite_code_crew_id"`

	CrewInviteCodeCode string `gorm:"type:varchar(16);not null;uniqueIndex;column:crew_invite_code_code"`

	CrewInviteCodeExpiresAt *time.Time `gorm:"column:crew_invite_code_expires_at"`
	CrewInviteCodeMaxUses   int        `gorm:"not null;default:0;column:crew_invite_code_max_uses"` // 0 = unlimited
	CrewInviteCodeUsedCount int        `gorm:"not null;default:0;column:crew_invite_code_used_count"`

	CrewInviteCodeCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:crew_invite_code_created_by"`

	CrewInviteCodeCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:crew_invite_code_created_at"`
	CrewInviteCodeDeletedAt gorm.DeletedAt `gorm:"column:crew_invite_code_deleted_at;index"`
}

func (CrewInviteCodeModel) TableName() string {
	return "crew_invite_codes"
}
