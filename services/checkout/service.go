package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/shopfront/checkoutlambda/lib/mylog"
	"github.com/shopfront/checkoutlambda/lib/mytime"
)

const (
	// Only one-off card payments in a single currency are supported.
	currency = "usd"

	defaultSuccessURL = "https://example.com/success"
	defaultCancelURL  = "https://example.com/cancel"
)

type Config struct {
	APIKey     string
	SuccessURL string
	CancelURL  string
}

type service struct {
	successURL string
	cancelURL  string
	payer      Payer
	nower      mytime.Nower
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cfg Config, payer Payer, nower mytime.Nower, logger mylog.Logger) *service {
	payer.UseAPIKey(cfg.APIKey)

	successURL := cfg.SuccessURL
	if successURL == "" {
		successURL = defaultSuccessURL
	}

	cancelURL := cfg.CancelURL
	if cancelURL == "" {
		cancelURL = defaultCancelURL
	}

	return &service{
		successURL: successURL,
		cancelURL:  cancelURL,
		payer:      payer,
		nower:      nower,
		logger:     logger,
	}
}

// startCheckout creates a hosted checkout session for the given items and
// returns the URL the shopper must be redirected to.
func (s *service) startCheckout(c context.Context, items []PurchaseItem) (string, error) {
	start := s.nower.Now()

	s.logger.Log(c, mylog.SeverityInfo, "Start checkout for %d items", len(items))

	session, err := s.payer.CreateCheckoutSession(c, s.sessionParams(items))
	if err != nil {
		return "", fmt.Errorf("error creating checkout session: %s", err)
	}

	s.logger.Log(c, mylog.SeverityInfo, "Created checkout session %s in %s", session.ID, s.nower.Now().Sub(start))

	return session.URL, nil
}

func (s *service) sessionParams(items []PurchaseItem) stripe.CheckoutSessionParams {
	return stripe.CheckoutSessionParams{
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
		LineItems:          buildLineItems(items),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
}

// buildLineItems maps purchase items one-to-one onto line items,
// preserving count and order. A zero quantity means "not specified" and
// becomes 1; this also swallows an explicit quantity of 0.
func buildLineItems(items []PurchaseItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.Price),
			},
			Quantity: stripe.Int64(quantity),
		})
	}

	return lineItems
}
