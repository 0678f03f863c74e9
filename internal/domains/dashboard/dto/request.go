package dto

type BookingTrendsRequest struct {
	Period string `json:"period" query:"period" validate:"omitempty,oneof=daily weekly monthly" example:"daily"`
}

type RecentBookingsRequest struct {
	Limit int `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=50"`
}
