package handler

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/completion"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/payments"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
)

const testUserID = "0d5f6b1e-8a0c-4c53-9a59-3f0d8b0f4a11"

// withUser attaches an authenticated identity to req
func withUser(req *http.Request, userID string) *http.Request {
	claims := &auth.Claims{Email: "player@example.test"}
	claims.Subject = userID
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) GetStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStatus), args.Error(1)
}

func (m *MockPlayerService) Invalidate(playerID string) {
	m.Called(playerID)
}

func (m *MockPlayerService) CacheStats() player.CacheStats {
	args := m.Called()
	return args.Get(0).(player.CacheStats)
}

// MockCompletionService mocks completion.Service
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) CompleteSession(ctx context.Context, requestedBy string, req domain.CompletionRequest) (*domain.CompletionOutcome, error) {
	args := m.Called(ctx, requestedBy, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionOutcome), args.Error(1)
}

func (m *MockCompletionService) RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HPRestoreResult), args.Error(1)
}

func (m *MockCompletionService) AwardXP(ctx context.Context, award domain.XPAward) (*completion.XPOutcome, error) {
	args := m.Called(ctx, award)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*completion.XPOutcome), args.Error(1)
}

func (m *MockCompletionService) AwardCoachXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error) {
	args := m.Called(ctx, award)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CXPResult), args.Error(1)
}

func (m *MockCompletionService) ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompletionAudit), args.Error(1)
}

// MockPaymentService mocks payments.Service
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateClubSubscription(ctx context.Context, customer payments.Customer, req payments.ClubSubscriptionRequest) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockPaymentService) PurchaseTokenPack(ctx context.Context, customer payments.Customer, req payments.TokenPackRequest) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockPaymentService) ProcessHybridPayment(ctx context.Context, customer payments.Customer, req payments.HybridPaymentRequest) (*domain.HybridPaymentResult, error) {
	args := m.Called(ctx, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HybridPaymentResult), args.Error(1)
}

func (m *MockPaymentService) ListCheckouts(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutRecord), args.Error(1)
}

func (m *MockPaymentService) Catalog() *payments.Catalog {
	args := m.Called()
	return args.Get(0).(*payments.Catalog)
}

// MockClubTokens mocks ClubTokens
type MockClubTokens struct {
	mock.Mock
}

func (m *MockClubTokens) ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenRedemptionResult), args.Error(1)
}

func (m *MockClubTokens) InitializeMonthlyTokenPool(ctx context.Context, req domain.TokenPoolInit) (*domain.TokenPoolResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPoolResult), args.Error(1)
}
