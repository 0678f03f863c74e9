package dto

// CreateOrderRequest carries the client-computed minor-unit amount plus a
// timestamp-based receipt label. Notes are free-form context; court_id is
// required there so the order can be tied to a court before verification.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount" validate:"required,gt=0" example:"100000"`
	Currency string            `json:"currency" validate:"omitempty,len=3" example:"INR"`
	Receipt  string            `json:"receipt" validate:"required,max=64" example:"receipt_1755072000000"`
	Notes    map[string]string `json:"notes" validate:"required"`
}

// VerifyPaymentRequest carries the provider triple together with the booking
// intent (court, date, derived window). The window is validated and the
// amount re-derived server-side before any booking is created.
type VerifyPaymentRequest struct {
	OrderID         string `json:"razorpay_order_id" validate:"required"`
	PaymentID       string `json:"razorpay_payment_id" validate:"required"`
	Signature       string `json:"razorpay_signature" validate:"required"`
	CourtID         int64  `json:"court_id" validate:"required,gt=0" example:"3"`
	Date            string `json:"booking_date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime       string `json:"start_time" validate:"required,datetime=15:04" example:"18:00"`
	EndTime         string `json:"end_time" validate:"required,datetime=15:04" example:"20:00"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}
