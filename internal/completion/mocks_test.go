package completion

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CompleteSession(ctx context.Context, req domain.CompletionRequest) (*domain.CompletionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *MockGateway) RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HPRestoreResult), args.Error(1)
}

func (m *MockGateway) AddXP(ctx context.Context, award domain.XPAward) (*domain.XPResult, error) {
	args := m.Called(ctx, award)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPResult), args.Error(1)
}

func (m *MockGateway) AddCXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error) {
	args := m.Called(ctx, award)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CXPResult), args.Error(1)
}

func (m *MockGateway) ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenRedemptionResult), args.Error(1)
}

func (m *MockGateway) InitializeMonthlyTokenPool(ctx context.Context, req domain.TokenPoolInit) (*domain.TokenPoolResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPoolResult), args.Error(1)
}

type MockAudit struct {
	mock.Mock
}

func (m *MockAudit) RecordCompletion(ctx context.Context, audit *domain.CompletionAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAudit) ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompletionAudit), args.Error(1)
}
