package dto

import "github.com/quickcourt/quickcourt/pkg/gdto"

type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"omitempty"`
	Address     string  `json:"address" validate:"required"`
	City        string  `json:"city" validate:"required"`
	State       string  `json:"state" validate:"omitempty"`
	Pincode     string  `json:"pincode" validate:"omitempty,numeric,len=6"`
	Latitude    float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude" validate:"omitempty,longitude"`
	Phone       string  `json:"phone" validate:"omitempty,min=7,max=15"`
	Email       string  `json:"email" validate:"omitempty,email"`
	OpeningTime string  `json:"opening_time" validate:"required,datetime=15:04"`
	ClosingTime string  `json:"closing_time" validate:"required,datetime=15:04"`
}

type UpdateVenueRequest struct {
	Name        string  `json:"name" validate:"omitempty"`
	Description string  `json:"description" validate:"omitempty"`
	Address     string  `json:"address" validate:"omitempty"`
	City        string  `json:"city" validate:"omitempty"`
	State       string  `json:"state" validate:"omitempty"`
	Pincode     string  `json:"pincode" validate:"omitempty,numeric,len=6"`
	Latitude    float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude" validate:"omitempty,longitude"`
	Phone       string  `json:"phone" validate:"omitempty,min=7,max=15"`
	Email       string  `json:"email" validate:"omitempty,email"`
	OpeningTime string  `json:"opening_time" validate:"omitempty,datetime=15:04"`
	ClosingTime string  `json:"closing_time" validate:"omitempty,datetime=15:04"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

type GetVenuesRequest struct {
	gdto.PaginationRequest
	City string `json:"city" query:"city" validate:"omitempty"`
}

type DeleteVenuePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}
