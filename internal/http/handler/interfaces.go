package handler

import "context"

// PaymentGateway creates payment intents with the external payment provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}
