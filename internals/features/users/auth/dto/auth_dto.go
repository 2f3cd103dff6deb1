package dto

import (
	usermodel "runcrew_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

func ToUserResponse(m *usermodel.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID.String(),
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
	}
}
