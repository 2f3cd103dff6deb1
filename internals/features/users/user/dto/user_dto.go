package dto

import (
	"runcrew_backend/internals/features/users/user/model"
)

type UserResponse struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	UserIsActive  bool   `json:"user_is_active"`
	UserCreatedAt string `json:"user_created_at"`
}

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=2,max=50"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID.String(),
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
