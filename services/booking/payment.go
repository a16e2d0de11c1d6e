package booking

import (
	"context"
	"fmt"
	"math"

	"hudumahub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler raises payment intents for booking fees and invoices.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, b *models.Booking, amount float64, purpose string) (*models.PaymentIntentResult, error)
}

// StripePaymentHandler is the production implementation, charging in KES.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{Logger: logger}
}

// CreateIntent raises a Stripe PaymentIntent for the given amount. The caller
// records the outcome on the booking; Stripe webhooks are not consumed here.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, b *models.Booking, amount float64, purpose string) (*models.PaymentIntentResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyKES)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("customerId", b.Customer.ID)
	params.AddMetadata("purpose", purpose)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.Logger.Info("payment intent created",
		zap.String("bookingId", b.ID),
		zap.String("intentId", pi.ID),
		zap.String("purpose", purpose),
		zap.Float64("amount", amount))

	return &models.PaymentIntentResult{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     string(stripe.CurrencyKES),
	}, nil
}
