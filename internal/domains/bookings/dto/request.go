package dto

type GetBookedSlotsRequest struct {
	CourtID int64  `json:"court_id" query:"court_id" validate:"required,gt=0"`
	Date    string `json:"date" query:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
}

type CancelUserBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid" swaggerignore:"true"`
	UserID    string `json:"user_id" validate:"required,uuid" swaggerignore:"true"`
}
