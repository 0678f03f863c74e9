package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWidget records the options it was opened with and returns a scripted
// result.
type stubWidget struct {
	opened bool
	opts   WidgetOptions
	result WidgetResult
	err    error
}

func (w *stubWidget) Open(_ context.Context, opts WidgetOptions) (WidgetResult, error) {
	w.opened = true
	w.opts = opts

	return w.result, w.err
}

func readySelection(t *testing.T) *Selection {
	t.Helper()

	sel := NewSelection()
	sel.ChooseCourt(Court{ID: 3, Name: "Court 1", PricePerHour: 500})
	sel.ChooseDate("2026-09-01", eveningSnapshot())
	sel.Toggle(1)
	sel.Toggle(2)

	return sel
}

func TestCheckout_PreconditionsBlockWithoutRequests(t *testing.T) {
	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("a", "r"))
	widget := &stubWidget{}
	checkout := NewCheckout(c, widget)
	ctx := context.Background()

	cases := []struct {
		name    string
		sel     func() *Selection
		params  CheckoutParams
		wantErr error
	}{
		{
			name:    "no court",
			sel:     func() *Selection { return NewSelection() },
			params:  CheckoutParams{AgreeToTerms: true},
			wantErr: ErrNoCourtSelected,
		},
		{
			name: "no date",
			sel: func() *Selection {
				sel := NewSelection()
				sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})

				return sel
			},
			params:  CheckoutParams{AgreeToTerms: true},
			wantErr: ErrNoDateSelected,
		},
		{
			name: "empty selection",
			sel: func() *Selection {
				sel := NewSelection()
				sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})
				sel.ChooseDate("2026-09-01", eveningSnapshot())

				return sel
			},
			params:  CheckoutParams{AgreeToTerms: true},
			wantErr: ErrEmptySelection,
		},
		{
			name:    "terms not accepted",
			sel:     func() *Selection { return readySelection(t) },
			params:  CheckoutParams{},
			wantErr: ErrTermsNotAccepted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := checkout.Run(ctx, tc.sel(), tc.params)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Zero(t, requests.Load())
	assert.False(t, widget.opened)
}

func TestCheckout_FullFlow(t *testing.T) {
	var orderBody, verifyBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/create_order":
			_ = json.NewDecoder(r.Body).Decode(&orderBody)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"order_id": "order_ABC123",
					"amount":   100000,
					"currency": "INR",
					"key_id":   "rzp_test_key",
					"receipt":  "receipt_1756400000000",
				},
			})
		case "/payments/verify_and_book":
			_ = json.NewDecoder(r.Body).Decode(&verifyBody)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"booking_id": "b-1",
					"payment_id": "pay_XYZ789",
					"status":     "confirmed",
				},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("a", "r"))
	widget := &stubWidget{
		result: WidgetResult{OrderID: "order_ABC123", PaymentID: "pay_XYZ789", Signature: "sig"},
	}
	checkout := NewCheckout(c, widget)

	sel := readySelection(t)
	res, err := checkout.Run(context.Background(), sel, CheckoutParams{
		AgreeToTerms:    true,
		CustomerName:    "Asha",
		CustomerEmail:   "asha@example.com",
		SpecialRequests: "corner court please",
	})

	require.NoError(t, err)
	assert.Equal(t, "b-1", res.BookingID)
	assert.Equal(t, "confirmed", res.Status)

	// Two slots at 500/hr converted to minor units, with a timestamp receipt
	// and the court id in the notes.
	assert.Equal(t, float64(100000), orderBody["amount"])
	assert.Regexp(t, `^receipt_\d+$`, orderBody["receipt"])
	require.IsType(t, map[string]any{}, orderBody["notes"])
	assert.Equal(t, "3", orderBody["notes"].(map[string]any)["court_id"])

	assert.True(t, widget.opened)
	assert.Equal(t, "rzp_test_key", widget.opts.Key)
	assert.Equal(t, int64(100000), widget.opts.Amount)
	assert.Equal(t, "INR", widget.opts.Currency)
	assert.Equal(t, "Asha", widget.opts.Name)

	// The two contiguous evening slots collapse into one interval on the
	// verification payload.
	assert.Equal(t, "order_ABC123", verifyBody["razorpay_order_id"])
	assert.Equal(t, "pay_XYZ789", verifyBody["razorpay_payment_id"])
	assert.Equal(t, "sig", verifyBody["razorpay_signature"])
	assert.Equal(t, float64(3), verifyBody["court_id"])
	assert.Equal(t, "2026-09-01", verifyBody["booking_date"])
	assert.Equal(t, "18:00", verifyBody["start_time"])
	assert.Equal(t, "20:00", verifyBody["end_time"])
	assert.Equal(t, "corner court please", verifyBody["special_requests"])
}

func TestCheckout_OrderCreationFails(t *testing.T) {
	var verifyCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/payments/verify_and_book" {
			verifyCalls.Add(1)
		}

		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "payment provider unavailable"})
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("a", "r"))
	widget := &stubWidget{}
	checkout := NewCheckout(c, widget)

	sel := readySelection(t)
	_, err := checkout.Run(context.Background(), sel, CheckoutParams{AgreeToTerms: true})

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, widget.opened, "widget must not open when order creation fails")
	assert.Zero(t, verifyCalls.Load())

	// Selection survives the failed attempt for a user retry.
	assert.Equal(t, 2, sel.Duration())

	// The processing guard is released for the retry.
	_, err = checkout.Run(context.Background(), sel, CheckoutParams{AgreeToTerms: true})
	assert.ErrorAs(t, err, &apiErr)
}

func TestCheckout_WidgetDismissed(t *testing.T) {
	var verifyCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/create_order":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"order_id": "order_ABC123", "amount": 100000, "currency": "INR", "key_id": "k"},
			})
		case "/payments/verify_and_book":
			verifyCalls.Add(1)
		}
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("a", "r"))
	widget := &stubWidget{result: WidgetResult{Dismissed: true}}
	checkout := NewCheckout(c, widget)

	_, err := checkout.Run(context.Background(), readySelection(t), CheckoutParams{AgreeToTerms: true})

	assert.ErrorIs(t, err, ErrPaymentDismissed)
	assert.Zero(t, verifyCalls.Load(), "no verification call after dismissal")
	assert.False(t, checkout.processing)
}
