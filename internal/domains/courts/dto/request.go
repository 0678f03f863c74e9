package dto

type CreateCourtRequest struct {
	VenueID      int64  `json:"venue_id" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required"`
	Sport        string `json:"sport" validate:"required"`
	Description  string `json:"description" validate:"omitempty"`
	PricePerHour int64  `json:"price_per_hour" validate:"required,gt=0"`
}

type UpdateCourtRequest struct {
	Name         string `json:"name" validate:"omitempty"`
	Sport        string `json:"sport" validate:"omitempty"`
	Description  string `json:"description" validate:"omitempty"`
	PricePerHour int64  `json:"price_per_hour" validate:"omitempty,gt=0"`
}

type UpdateCourtStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active maintenance inactive"`
}

type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateTimeSlotRequest struct {
	IsBlocked   *bool  `json:"is_blocked" validate:"required"`
	BlockReason string `json:"block_reason" validate:"omitempty"`
}
