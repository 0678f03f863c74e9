package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Checkout preconditions. Each is checked before any network call; a failing
// precondition never creates a payment order.
var (
	ErrNoCourtSelected  = errors.New("client: no court selected")
	ErrNoDateSelected   = errors.New("client: no date selected")
	ErrEmptySelection   = errors.New("client: no slots selected")
	ErrTermsNotAccepted = errors.New("client: terms must be accepted")

	// ErrCheckoutInProgress guards against double-submission within this
	// session only; concurrent attempts from other sessions are resolved by
	// the backend's overlap re-validation.
	ErrCheckoutInProgress = errors.New("client: checkout already in progress")

	// ErrPaymentDismissed marks the normal exit path where the user closed
	// the payment widget without paying. No booking exists and no cleanup
	// call is made; the abandoned order expires server-side.
	ErrPaymentDismissed = errors.New("client: payment widget dismissed")
)

// WidgetOptions configures one invocation of the external payment widget.
type WidgetOptions struct {
	Key         string
	OrderID     string
	Amount      int64
	Currency    string
	Description string
	Name        string
	Email       string
	ThemeColor  string
}

// WidgetResult is the provider triple returned by a completed payment, or
// Dismissed when the user closed the widget without paying.
type WidgetResult struct {
	OrderID   string
	PaymentID string
	Signature string
	Dismissed bool
}

// PaymentWidget opens the provider's payment surface and suspends until the
// user completes or dismisses it. Loading the widget on demand is the
// adapter's concern, keeping checkout testable without a browser.
type PaymentWidget interface {
	Open(ctx context.Context, opts WidgetOptions) (WidgetResult, error)
}

// CheckoutParams is the per-attempt input alongside the selection.
type CheckoutParams struct {
	SpecialRequests string
	AgreeToTerms    bool
	CustomerName    string
	CustomerEmail   string
}

const defaultThemeColor = "#16a34a"

// Checkout sequences order creation, the payment widget and server-side
// verification for one selection. Every step is gated on the previous one;
// a failure at any step leaves no booking behind.
type Checkout struct {
	client     *Client
	widget     PaymentWidget
	processing bool
}

func NewCheckout(c *Client, w PaymentWidget) *Checkout {
	return &Checkout{client: c, widget: w}
}

// Run executes one checkout attempt. There is no automatic retry at any
// step: on failure the caller re-triggers the whole flow, which creates a
// fresh order.
func (co *Checkout) Run(ctx context.Context, sel *Selection, params CheckoutParams) (BookingConfirmation, error) {
	if err := validate(sel, params); err != nil {
		return BookingConfirmation{}, err
	}

	if co.processing {
		return BookingConfirmation{}, ErrCheckoutInProgress
	}

	co.processing = true
	defer func() { co.processing = false }()

	order, err := co.client.CreateOrder(ctx, CreateOrderRequest{
		Amount:  sel.TotalPriceMinor(),
		Receipt: fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		Notes: map[string]string{
			"court_id": strconv.FormatInt(sel.Court().ID, 10),
		},
	})
	if err != nil {
		return BookingConfirmation{}, err
	}

	result, err := co.widget.Open(ctx, WidgetOptions{
		Key:         order.KeyID,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Description: sel.Court().Name,
		Name:        params.CustomerName,
		Email:       params.CustomerEmail,
		ThemeColor:  defaultThemeColor,
	})
	if err != nil {
		return BookingConfirmation{}, err
	}

	if result.Dismissed {
		return BookingConfirmation{}, ErrPaymentDismissed
	}

	start, end, _ := sel.Interval()

	return co.client.VerifyAndBook(ctx, VerifyRequest{
		OrderID:         result.OrderID,
		PaymentID:       result.PaymentID,
		Signature:       result.Signature,
		CourtID:         sel.Court().ID,
		Date:            sel.Date(),
		StartTime:       start,
		EndTime:         end,
		SpecialRequests: params.SpecialRequests,
	})
}

func validate(sel *Selection, params CheckoutParams) error {
	switch {
	case sel == nil || sel.Court() == nil:
		return ErrNoCourtSelected
	case sel.Date() == "":
		return ErrNoDateSelected
	case sel.Duration() == 0:
		return ErrEmptySelection
	case !params.AgreeToTerms:
		return ErrTermsNotAccepted
	}

	return nil
}
