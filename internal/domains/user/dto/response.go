package dto

import (
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt/internal/domains/user/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/helper"
)

type UserRegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UserLoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OauthGetURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type UserProfileResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ProfileImage string `json:"profile_image"`
	IsVerified   bool   `json:"is_verified"`
}

type UserAdminResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type PaginatedUserResponse struct {
	Users      []UserAdminResponse `json:"users"`
	TotalItems int                 `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
}

func (u *UserRegisterResponse) ToRegisterResponse(user repository.User) *UserRegisterResponse {
	return &UserRegisterResponse{
		ID:    uuid.UUID(user.ID.Bytes).String(),
		Email: user.Email,
	}
}

func (u *UserLoginResponse) ToLoginResponse(accessToken, refreshToken string) *UserLoginResponse {
	return &UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

func (u UserAdminResponse) FromModel(user repository.User) UserAdminResponse {
	var lastLogin string
	if user.LastLogin.Valid {
		lastLogin = user.LastLogin.Time.Format(constant.FullDateFormat)
	}

	return UserAdminResponse{
		ID:         uuid.UUID(user.ID.Bytes).String(),
		Email:      user.Email,
		Name:       user.FullName.String,
		Role:       user.Role,
		IsVerified: user.IsVerified.Bool,
		LastLogin:  lastLogin,
		CreatedAt:  user.CreatedAt.Time.Format(constant.FullDateFormat),
	}
}

func (p *PaginatedUserResponse) FromModel(users []repository.User, totalItems, limit int) {
	p.TotalItems = totalItems
	p.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(users) == 0 {
		p.Users = []UserAdminResponse{}

		return
	}

	p.Users = make([]UserAdminResponse, len(users))

	for i, user := range users {
		p.Users[i] = UserAdminResponse{}.FromModel(user)
	}
}

func (u UserProfileResponse) ToProfileResponse(user repository.User) UserProfileResponse {
	var name, profileImage string
	if user.FullName.Valid {
		name = user.FullName.String
	}

	if user.ProfileImage.Valid {
		profileImage = user.ProfileImage.String
	}

	return UserProfileResponse{
		ID:           uuid.UUID(user.ID.Bytes).String(),
		Email:        user.Email,
		Name:         name,
		Role:         user.Role,
		ProfileImage: profileImage,
		IsVerified:   user.IsVerified.Bool,
	}
}
