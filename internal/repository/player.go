package repository

import (
	"context"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// PlayerReader reads HP and XP state owned by the hosted backend
type PlayerReader interface {
	GetPlayerStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error)
}
