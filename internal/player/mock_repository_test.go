package player

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

type MockPlayerReader struct {
	mock.Mock
}

func (m *MockPlayerReader) GetPlayerStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStatus), args.Error(1)
}
