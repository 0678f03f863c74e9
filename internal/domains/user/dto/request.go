package dto

import "github.com/quickcourt/quickcourt/pkg/gdto"

type UserRegisterRequest struct {
	Email    string `example:"string@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=player owner"`
}

type UserLoginRequest struct {
	Email    string `example:"string@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" query:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"omitempty,min=3"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
}

type GetUsersRequest struct {
	gdto.PaginationRequest
	Email    string `query:"email" json:"email"`
	FullName string `query:"full_name" json:"full_name"`
	Role     string `query:"role" json:"role"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=player owner admin"`
}
