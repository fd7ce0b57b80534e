package repository

import (
	"context"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// Checkout persists the local record of provider checkout sessions
type Checkout interface {
	CreateCheckout(ctx context.Context, record *domain.CheckoutRecord) error
	UpdateCheckoutStatus(ctx context.Context, providerSessionID, status string) error
	ListCheckoutsByUser(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error)
	// ExpireStaleCheckouts marks open checkouts created before cutoff as expired
	ExpireStaleCheckouts(ctx context.Context, cutoff time.Time) (int64, error)
}
