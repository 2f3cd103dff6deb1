package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id"`

	UserName  string `gorm:"type:varchar(50);not null;column:user_name"` // display name shown on leaderboards
	UserEmail string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email"`

	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}
