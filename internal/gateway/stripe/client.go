package stripe

import (
	"context"

	apperrors "medizone/pkg/errors"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const msgCreateIntentFailed = "failed to create payment intent"

// Gateway wraps the Stripe client used to create payment intents.
type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	return &Gateway{api: client.New(secretKey, nil)}
}

// CreateIntent creates a payment intent for the given amount in cents and
// returns its client secret for the frontend to confirm.
func (g *Gateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.Upstream(msgCreateIntentFailed, err)
	}

	return intent.ClientSecret, nil
}
