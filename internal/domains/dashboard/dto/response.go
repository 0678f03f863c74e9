package dto

import (
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/helper"
)

type KpisResponse struct {
	TotalVenues   int64 `json:"total_venues"`
	ActiveCourts  int64 `json:"active_courts"`
	TotalBookings int64 `json:"total_bookings"`
	TotalEarnings int64 `json:"total_earnings"`
}

func (k KpisResponse) FromModel(model repository.GetOwnerKpisRow) KpisResponse {
	return KpisResponse{
		TotalVenues:   model.TotalVenues,
		ActiveCourts:  model.ActiveCourts,
		TotalBookings: model.TotalBookings,
		TotalEarnings: model.TotalEarnings,
	}
}

type TrendPoint struct {
	Bucket   string `json:"bucket"`
	Bookings int64  `json:"bookings"`
	Earnings int64  `json:"earnings"`
}

type BookingTrendsResponse struct {
	Period string       `json:"period"`
	Points []TrendPoint `json:"points"`
}

func (b *BookingTrendsResponse) FromModel(trends []repository.GetBookingTrendsRow, period string) {
	b.Period = period
	b.Points = make([]TrendPoint, len(trends))

	for i, trend := range trends {
		b.Points[i] = TrendPoint{
			Bucket:   trend.Bucket,
			Bookings: trend.Bookings,
			Earnings: trend.Earnings,
		}
	}
}

type PeakHour struct {
	Hour     int   `json:"hour"`
	Bookings int64 `json:"bookings"`
}

type PeakHoursResponse struct {
	Hours []PeakHour `json:"hours"`
}

func (p *PeakHoursResponse) FromModel(hours []repository.GetPeakHoursRow) {
	p.Hours = make([]PeakHour, len(hours))

	for i, hour := range hours {
		p.Hours[i] = PeakHour{
			Hour:     int(hour.Hour),
			Bookings: hour.Bookings,
		}
	}
}

type RecentBooking struct {
	ID          string `json:"id"`
	CourtName   string `json:"court_name"`
	VenueName   string `json:"venue_name"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TotalAmount int64  `json:"total_amount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type RecentBookingsResponse struct {
	Bookings []RecentBooking `json:"bookings"`
}

func (r *RecentBookingsResponse) FromModel(bookings []repository.GetRecentBookingsRow) {
	r.Bookings = make([]RecentBooking, len(bookings))

	for i, booking := range bookings {
		startTime, _ := helper.PgTimeToString(booking.StartTime)
		endTime, _ := helper.PgTimeToString(booking.EndTime)

		r.Bookings[i] = RecentBooking{
			ID:          booking.ID.String(),
			CourtName:   booking.CourtName,
			VenueName:   booking.VenueName,
			BookingDate: booking.BookingDate.Time.Format(constant.DateFormat),
			StartTime:   startTime,
			EndTime:     endTime,
			TotalAmount: booking.TotalAmount,
			Status:      booking.Status,
			CreatedAt:   booking.CreatedAt.Time.Format(constant.FullDateFormat),
		}
	}
}

type CourtStat struct {
	CourtID   int64  `json:"court_id"`
	CourtName string `json:"court_name"`
	Sport     string `json:"sport"`
	VenueName string `json:"venue_name"`
	Bookings  int64  `json:"bookings"`
	Earnings  int64  `json:"earnings"`
}

type CourtStatsResponse struct {
	Courts []CourtStat `json:"courts"`
}

func (c *CourtStatsResponse) FromModel(stats []repository.GetCourtStatsRow) {
	c.Courts = make([]CourtStat, len(stats))

	for i, stat := range stats {
		c.Courts[i] = CourtStat{
			CourtID:   stat.CourtID,
			CourtName: stat.CourtName,
			Sport:     stat.Sport,
			VenueName: stat.VenueName,
			Bookings:  stat.Bookings,
			Earnings:  stat.Earnings,
		}
	}
}
