package dto

import (
	"github.com/quickcourt/quickcourt/internal/domains/venues/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/timeslot"
)

type VenuePhotoResponse struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

func (p VenuePhotoResponse) FromModel(model repository.VenuePhoto) VenuePhotoResponse {
	return VenuePhotoResponse{
		ID:        model.ID,
		URL:       model.Url,
		IsPrimary: helper.BoolFromPg(model.IsPrimary),
	}
}

type VenueResponse struct {
	ID           int64                `json:"id"`
	OwnerID      string               `json:"owner_id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	State        string               `json:"state,omitempty"`
	Pincode      string               `json:"pincode,omitempty"`
	Latitude     float64              `json:"latitude,omitempty"`
	Longitude    float64              `json:"longitude,omitempty"`
	Phone        string               `json:"phone,omitempty"`
	Email        string               `json:"email,omitempty"`
	OpeningTime  string               `json:"opening_time"`
	ClosingTime  string               `json:"closing_time"`
	Rating       float64              `json:"rating"`
	TotalReviews int                  `json:"total_reviews"`
	IsActive     bool                 `json:"is_active"`
	Photos       []VenuePhotoResponse `json:"photos,omitempty"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

func (v VenueResponse) FromModel(model repository.Venue) VenueResponse {
	openingTime, _ := helper.PgTimeToString(model.OpeningTime)
	closingTime, _ := helper.PgTimeToString(model.ClosingTime)

	return VenueResponse{
		ID:           model.ID,
		OwnerID:      helper.UUIDString(model.OwnerID),
		Name:         model.Name,
		Description:  model.Description.String,
		Address:      model.Address,
		City:         model.City,
		State:        model.State.String,
		Pincode:      model.Pincode.String,
		Latitude:     model.Latitude.Float64,
		Longitude:    model.Longitude.Float64,
		Phone:        model.Phone.String,
		Email:        model.Email.String,
		OpeningTime:  openingTime,
		ClosingTime:  closingTime,
		Rating:       helper.Float64FromPg(model.Rating),
		TotalReviews: int(model.TotalReviews),
		IsActive:     helper.BoolFromPg(model.IsActive),
		CreatedAt:    model.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:    model.UpdatedAt.Time.Format(constant.FullDateFormat),
	}
}

func (v VenueResponse) WithPhotos(photos []repository.VenuePhoto) VenueResponse {
	v.Photos = make([]VenuePhotoResponse, len(photos))

	for i, photo := range photos {
		v.Photos[i] = VenuePhotoResponse{}.FromModel(photo)
	}

	return v
}

type GetVenuesResponse struct {
	Venues     []VenueResponse `json:"venues"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (g *GetVenuesResponse) FromModel(venues []repository.Venue, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(venues) == 0 {
		g.Venues = []VenueResponse{}

		return
	}

	g.Venues = make([]VenueResponse, len(venues))

	for i, venue := range venues {
		g.Venues[i] = VenueResponse{}.FromModel(venue)
	}
}

// CourtAvailability is one court inside an availability snapshot. TimeSlots
// carries the per-date slot list with is_available already computed.
type CourtAvailability struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Sport        string          `json:"sport"`
	Description  string          `json:"description,omitempty"`
	PricePerHour int64           `json:"price_per_hour"`
	Status       string          `json:"status"`
	TimeSlots    []timeslot.Slot `json:"time_slots"`
}

type VenueAvailabilityResponse struct {
	Venue  VenueResponse       `json:"venue"`
	Date   string              `json:"date"`
	Courts []CourtAvailability `json:"courts"`
}

type UploadPhotosResponse struct {
	URLs []string `json:"urls"`
}
