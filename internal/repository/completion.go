package repository

import (
	"context"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// CompletionAudit persists one row per session completion attempt
type CompletionAudit interface {
	RecordCompletion(ctx context.Context, audit *domain.CompletionAudit) error
	ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error)
}
