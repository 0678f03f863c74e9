package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid venue id: no request sent", func(t *testing.T) {
		var calls int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		c := New(server.URL, NewMemoryTokenStore("a", "r"))

		_, err := c.Venue(ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidVenueID)

		_, err = c.VenueForDate(ctx, -3, "2026-09-01")
		assert.ErrorIs(t, err, ErrInvalidVenueID)

		assert.Zero(t, calls)
	})

	t.Run("time_slots field normalized", func(t *testing.T) {
		server := availabilityServer(t, "time_slots", "")

		defer server.Close()

		c := New(server.URL, NewMemoryTokenStore("a", "r"))

		res, err := c.Venue(ctx, 7)

		require.NoError(t, err)
		require.Len(t, res.Courts, 1)
		require.Len(t, res.Courts[0].Slots, 2)
		assert.Equal(t, "18:00", res.Courts[0].Slots[0].StartTime)
		assert.True(t, res.Courts[0].Slots[0].Available)
	})

	t.Run("available_slots field normalized to the same slice", func(t *testing.T) {
		server := availabilityServer(t, "available_slots", "")

		defer server.Close()

		c := New(server.URL, NewMemoryTokenStore("a", "r"))

		res, err := c.Venue(ctx, 7)

		require.NoError(t, err)
		require.Len(t, res.Courts[0].Slots, 2)
		assert.Equal(t, "19:00", res.Courts[0].Slots[1].StartTime)
	})

	t.Run("date is passed as a query parameter", func(t *testing.T) {
		server := availabilityServer(t, "time_slots", "2026-09-01")

		defer server.Close()

		c := New(server.URL, NewMemoryTokenStore("a", "r"))

		res, err := c.VenueForDate(ctx, 7, "2026-09-01")

		require.NoError(t, err)
		assert.Equal(t, "2026-09-01", res.Date)
	})
}

// availabilityServer serves one venue with one court and two contiguous
// evening slots, emitting the snapshot under the given slot field name.
func availabilityServer(t *testing.T, slotField, wantDate string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues/7", r.URL.Path)

		if wantDate != "" {
			assert.Equal(t, wantDate, r.URL.Query().Get("date"))
		}

		court := map[string]any{
			"id":             3,
			"name":           "Court 1",
			"sport":          "badminton",
			"price_per_hour": 500,
			"status":         "active",
			slotField: []map[string]any{
				{"id": 1, "start_time": "18:00", "end_time": "19:00", "is_available": true},
				{"id": 2, "start_time": "19:00", "end_time": "20:00", "is_available": true},
			},
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"venue":  map[string]any{"id": 7, "name": "Smash Arena"},
				"date":   wantDate,
				"courts": []any{court},
			},
		})
	}))
}
