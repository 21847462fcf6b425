package dto

import (
	"devfinder/internal/service"
)

type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ"`
	Role     string `json:"role" validate:"required,oneof=Candidato Recrutador"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type UpdateUserRequest struct {
	Name   *string  `json:"name" validate:"omitempty,min=4"`
	Email  *string  `json:"email" validate:"omitempty,email"`
	Resume *string  `json:"resume"`
	Skills []string `json:"skills"`
	Stack  []string `json:"stack"`
}

type UserResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar"`
}

type CreateAccountResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

type LoginResponse struct {
	Message      string        `json:"message"`
	User         *UserResponse `json:"user,omitempty"`
	Token        string        `json:"token,omitempty"`
	TwoStepsAuth bool          `json:"twoStepsAuth"`
}

type ConfirmCodeResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func UserResponseFromSummary(summary *service.UserSummary) *UserResponse {
	if summary == nil {
		return nil
	}
	return &UserResponse{
		ID:     summary.ID,
		Email:  summary.Email,
		Name:   summary.Name,
		Role:   summary.Role,
		Avatar: summary.Avatar,
	}
}
