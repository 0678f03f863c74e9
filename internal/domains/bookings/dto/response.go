package dto

import (
	"github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/helper"
)

type BookingResponse struct {
	ID              string `json:"id"`
	CourtID         int64  `json:"court_id"`
	CourtName       string `json:"court_name"`
	Sport           string `json:"sport"`
	VenueName       string `json:"venue_name"`
	BookingDate     string `json:"booking_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationHours   int    `json:"duration_hours"`
	TotalAmount     int64  `json:"total_amount"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	SpecialRequests string `json:"special_requests,omitempty"`
	CanceledBy      string `json:"canceled_by,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func (b BookingResponse) FromModel(model repository.GetBookingByIdRow) BookingResponse {
	startTime, _ := helper.PgTimeToString(model.StartTime)
	endTime, _ := helper.PgTimeToString(model.EndTime)

	return BookingResponse{
		ID:              model.ID.String(),
		CourtID:         model.CourtID,
		CourtName:       model.CourtName,
		Sport:           model.Sport,
		VenueName:       model.VenueName,
		BookingDate:     model.BookingDate.Time.Format(constant.DateFormat),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationHours:   int(model.DurationHours),
		TotalAmount:     model.TotalAmount,
		Status:          model.Status,
		PaymentStatus:   model.PaymentStatus,
		SpecialRequests: model.SpecialRequests.String,
		CanceledBy:      model.CanceledBy.String,
		CreatedAt:       model.CreatedAt.Time.Format(constant.FullDateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (b *GetBookingsResponse) FromModel(bookings []repository.GetBookingsByUserIdRow, totalItems, limit int) {
	b.TotalItems = totalItems
	b.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(bookings) == 0 {
		b.Bookings = []BookingResponse{}

		return
	}

	b.Bookings = make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		b.Bookings[i] = BookingResponse{}.FromModel(repository.GetBookingByIdRow(booking))
	}
}

type BookedSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type GetBookedSlotsResponse struct {
	CourtID     int64        `json:"court_id"`
	Date        string       `json:"date"`
	BookedSlots []BookedSlot `json:"booked_slots"`
	TotalItems  int          `json:"total_items"`
}

func (b *GetBookedSlotsResponse) FromModel(bookedSlots []repository.GetBookedTimeSlotsRow, courtID int64, date string) {
	b.CourtID = courtID
	b.Date = date

	if len(bookedSlots) == 0 {
		b.BookedSlots = []BookedSlot{}
		b.TotalItems = 0

		return
	}

	b.BookedSlots = make([]BookedSlot, len(bookedSlots))
	b.TotalItems = len(bookedSlots)

	for i, slot := range bookedSlots {
		startTime, _ := helper.PgTimeToString(slot.StartTime)
		endTime, _ := helper.PgTimeToString(slot.EndTime)

		b.BookedSlots[i] = BookedSlot{
			StartTime: startTime,
			EndTime:   endTime,
		}
	}
}
