package payments

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateCheckout(ctx context.Context, params CheckoutParams) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockProvider) ExpireCheckout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockRedeemer struct {
	mock.Mock
}

func (m *MockRedeemer) ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenRedemptionResult), args.Error(1)
}

type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) CreateCheckout(ctx context.Context, record *domain.CheckoutRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCheckoutRepo) UpdateCheckoutStatus(ctx context.Context, providerSessionID, status string) error {
	args := m.Called(ctx, providerSessionID, status)
	return args.Error(0)
}

func (m *MockCheckoutRepo) ListCheckoutsByUser(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutRecord), args.Error(1)
}

func (m *MockCheckoutRepo) ExpireStaleCheckouts(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
