package client

import (
	"context"
	"net/http"
)

// CreateOrderRequest opens a provider payment order for the client-computed
// minor-unit amount. Receipt is a timestamp-based label; notes carry
// contextual data such as the court id.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is a provider-side payment order created before capture. The amount
// is in minor currency units.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
	Receipt  string `json:"receipt"`
}

// VerifyRequest carries the provider triple plus the booking intent: court,
// date, and the interval derived from the selection.
type VerifyRequest struct {
	OrderID         string `json:"razorpay_order_id"`
	PaymentID       string `json:"razorpay_payment_id"`
	Signature       string `json:"razorpay_signature"`
	CourtID         int64  `json:"court_id"`
	Date            string `json:"booking_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type BookingConfirmation struct {
	BookingID string `json:"booking_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

// CreateOrder opens a payment order with the provider via the backend.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	var res Order

	if err := c.do(ctx, http.MethodPost, "/payments/create_order", req, &res); err != nil {
		return Order{}, err
	}

	return res, nil
}

// VerifyAndBook submits the provider's payment triple and the booking intent
// for server-side signature verification and booking creation. The client
// never validates the signature locally.
func (c *Client) VerifyAndBook(ctx context.Context, req VerifyRequest) (BookingConfirmation, error) {
	var res BookingConfirmation

	if err := c.do(ctx, http.MethodPost, "/payments/verify_and_book", req, &res); err != nil {
		return BookingConfirmation{}, err
	}

	return res, nil
}
