package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickcourt/quickcourt/pkg/timeslot"
)

// ErrInvalidVenueID is returned before any network call when the venue id is
// not a positive integer.
var ErrInvalidVenueID = errors.New("client: venue id must be a positive integer")

// Venue is the venue record nested in an availability response.
type Venue struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state,omitempty"`
	Pincode      string  `json:"pincode,omitempty"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	OpeningTime  string  `json:"opening_time"`
	ClosingTime  string  `json:"closing_time"`
}

// Court carries the per-date slot snapshot for one court. Backends differ on
// the slot field name; both available_slots and time_slots are accepted and
// normalized by the loader, after which Slots holds the snapshot.
type Court struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	PricePerHour int64  `json:"price_per_hour"`
	Status       string `json:"status"`

	TimeSlots      []timeslot.Slot `json:"time_slots"`
	AvailableSlots []timeslot.Slot `json:"available_slots"`

	Slots []timeslot.Slot `json:"-"`
}

// Availability is one venue's court and slot snapshot for a date.
type Availability struct {
	Venue  Venue   `json:"venue"`
	Date   string  `json:"date"`
	Courts []Court `json:"courts"`
}

func (a *Availability) normalize() {
	for i := range a.Courts {
		court := &a.Courts[i]

		court.Slots = court.TimeSlots
		if len(court.Slots) == 0 {
			court.Slots = court.AvailableSlots
		}

		court.TimeSlots = nil
		court.AvailableSlots = nil
	}
}

// Venue fetches a venue with courts and today's slot snapshot.
func (c *Client) Venue(ctx context.Context, id int64) (Availability, error) {
	return c.availability(ctx, id, "")
}

// VenueForDate fetches the same shape with slot availability scoped to the
// given date (YYYY-MM-DD).
func (c *Client) VenueForDate(ctx context.Context, id int64, date string) (Availability, error) {
	return c.availability(ctx, id, date)
}

func (c *Client) availability(ctx context.Context, id int64, date string) (Availability, error) {
	var res Availability

	if id <= 0 {
		return res, ErrInvalidVenueID
	}

	path := fmt.Sprintf("/venues/%d", id)
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return Availability{}, err
	}

	res.normalize()

	return res, nil
}
