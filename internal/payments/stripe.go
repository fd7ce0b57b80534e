package payments

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// StripeProvider creates Stripe Checkout sessions with inline price data
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a provider authenticated with secretKey
func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{api: client.New(secretKey, nil)}
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, params CheckoutParams) (*domain.CheckoutSession, error) {
	sp := buildSessionParams(params)
	sp.Context = ctx

	sess, err := p.api.CheckoutSessions.New(sp)
	if err != nil {
		return nil, err
	}
	return &domain.CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

func (p *StripeProvider) ExpireCheckout(ctx context.Context, sessionID string) error {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx
	_, err := p.api.CheckoutSessions.Expire(sessionID, params)
	return err
}

func buildSessionParams(params CheckoutParams) *stripe.CheckoutSessionParams {
	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(Currency),
		UnitAmount: stripe.Int64(params.AmountCents),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(params.ProductName),
		},
	}
	if params.Description != "" {
		priceData.ProductData.Description = stripe.String(params.Description)
	}
	if params.Mode == ModeSubscription {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}

	sp := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(params.Mode),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{PriceData: priceData, Quantity: stripe.Int64(1)},
		},
	}
	if params.CustomerEmail != "" {
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}
	for k, v := range params.Metadata {
		sp.AddMetadata(k, v)
	}
	return sp
}
