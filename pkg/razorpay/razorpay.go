package razorpay

import (
	"context"
	"errors"

	"github.com/quickcourt/quickcourt/config"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

//go:generate go run go.uber.org/mock/mockgen -source=razorpay.go -destination=mock/gateway_mock.go -package=mock github.com/quickcourt/quickcourt/pkg/razorpay Gateway

var (
	ErrMalformedOrder = errors.New("razorpay: malformed order response")
)

// Order is the provider-side payment order referenced by the checkout widget
// and later by verification. Amount is in minor currency units.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

type CreateOrderParams struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]interface{}
}

// Gateway isolates the payment provider so services can be tested without
// network access. Signature verification is the backend's sole authority;
// clients never validate signatures locally.
type Gateway interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

type gateway struct {
	client    *razorpay.Client
	keySecret string
}

func New(cfg *config.Config) Gateway {
	return &gateway{
		client:    razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		keySecret: cfg.Razorpay.KeySecret,
	}
}

func (g *gateway) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	data := map[string]interface{}{
		"amount":   params.Amount,
		"currency": params.Currency,
		"receipt":  params.Receipt,
	}

	if len(params.Notes) > 0 {
		data["notes"] = params.Notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return Order{}, err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return Order{}, ErrMalformedOrder
	}

	amount, ok := body["amount"].(float64)
	if !ok {
		return Order{}, ErrMalformedOrder
	}

	currency, ok := body["currency"].(string)
	if !ok {
		currency = params.Currency
	}

	return Order{
		ID:       id,
		Amount:   int64(amount),
		Currency: currency,
	}, nil
}

func (g *gateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, g.keySecret)
}
