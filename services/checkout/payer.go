package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
)

//go:generate mockgen -source=payer.go -package checkout -destination payer_mock.go Payer
type Payer interface {
	UseAPIKey(key string)
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
}

type stripePayer struct{}

func NewPayer() Payer {
	return &stripePayer{}
}

func (p *stripePayer) UseAPIKey(apiKey string) {
	stripe.Key = apiKey
}

func (p *stripePayer) CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	session, err := session.New(&params)
	if err != nil {
		return stripe.CheckoutSession{}, fmt.Errorf("error creating stripe session: %s", err)
	}

	return *session, nil
}
