package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CrewModel struct {
	CrewID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:crew_id"`

	CrewName        string  `gorm:"type:varchar(100);not null;column:crew_name"`
	CrewSlug        string  `gorm:"type:varchar(160);not null;uniqueIndex;column:crew_slug"`
	CrewDescription *string `gorm:"type:text;column:crew_description"`
	CrewRegion      *string `gorm:"type:varchar(100);column:crew_region"` // e.g. "서울 한강"

	// Location picker source for attendance logging (management UI).
	CrewPresetLocations pq.StringArray `gorm:"type:text[];column:crew_preset_locations"`

	// Free-form crew preferences (notification toggles, default meeting time, ...).
	CrewSettings datatypes.JSON `gorm:"type:jsonb;column:crew_settings"`

	CrewCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:crew_created_by"`

	CrewCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:crew_created_at"`
	CrewUpdatedAt *time.Time     `gorm:"column:crew_updated_at"`
	CrewDeletedAt gorm.DeletedAt `gorm:"column:crew_deleted_at;index"`
}

func (CrewModel) TableName() string {
	return "crews"
}
