package dto

import (
	"github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/helper"
)

type TimeSlotResponse struct {
	ID          int64  `json:"id"`
	CourtID     int64  `json:"court_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockReason string `json:"block_reason,omitempty"`
}

func (t TimeSlotResponse) FromModel(model repository.TimeSlot) TimeSlotResponse {
	startTime, _ := helper.PgTimeToString(model.StartTime)
	endTime, _ := helper.PgTimeToString(model.EndTime)

	return TimeSlotResponse{
		ID:          model.ID,
		CourtID:     model.CourtID,
		StartTime:   startTime,
		EndTime:     endTime,
		IsBlocked:   helper.BoolFromPg(model.IsBlocked),
		BlockReason: model.BlockReason.String,
	}
}

type CourtResponse struct {
	ID           int64              `json:"id"`
	VenueID      int64              `json:"venue_id"`
	Name         string             `json:"name"`
	Sport        string             `json:"sport"`
	Description  string             `json:"description,omitempty"`
	PricePerHour int64              `json:"price_per_hour"`
	Status       string             `json:"status"`
	TimeSlots    []TimeSlotResponse `json:"time_slots,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

func (c CourtResponse) FromModel(model repository.Court) CourtResponse {
	return CourtResponse{
		ID:           model.ID,
		VenueID:      model.VenueID,
		Name:         model.Name,
		Sport:        model.Sport,
		Description:  model.Description.String,
		PricePerHour: model.PricePerHour,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:    model.UpdatedAt.Time.Format(constant.FullDateFormat),
	}
}

func (c CourtResponse) WithTimeSlots(slots []repository.TimeSlot) CourtResponse {
	c.TimeSlots = make([]TimeSlotResponse, len(slots))

	for i, slot := range slots {
		c.TimeSlots[i] = TimeSlotResponse{}.FromModel(slot)
	}

	return c
}

type GetCourtsResponse struct {
	Courts     []CourtResponse `json:"courts"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (g *GetCourtsResponse) FromModel(courts []repository.Court, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(courts) == 0 {
		g.Courts = []CourtResponse{}

		return
	}

	g.Courts = make([]CourtResponse, len(courts))

	for i, court := range courts {
		g.Courts[i] = CourtResponse{}.FromModel(court)
	}
}

type GetTimeSlotsResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
}

func (g *GetTimeSlotsResponse) FromModel(slots []repository.TimeSlot) {
	g.TimeSlots = make([]TimeSlotResponse, len(slots))

	for i, slot := range slots {
		g.TimeSlots[i] = TimeSlotResponse{}.FromModel(slot)
	}
}
