package payments

import (
	"context"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// CheckoutParams describes one hosted checkout with a single line item
type CheckoutParams struct {
	Mode          string
	ProductName   string
	Description   string
	AmountCents   int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutProvider creates and cancels hosted checkout sessions
type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, params CheckoutParams) (*domain.CheckoutSession, error)
	ExpireCheckout(ctx context.Context, sessionID string) error
}
