package dto

import (
	userModel "volunteerhub_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,oneof=student organizer"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

func (r *RegisterRequest) ToModel() *userModel.UserModel {
	role := r.Role
	if role == "" {
		role = "student"
	}
	return &userModel.UserModel{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Role:       role,
		Phone:      r.Phone,
		Department: r.Department,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
