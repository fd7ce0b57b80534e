package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// CompletionAuditRepository stores session completion attempts
type CompletionAuditRepository struct {
	db *pgxpool.Pool
}

// NewCompletionAuditRepository creates a new CompletionAuditRepository
func NewCompletionAuditRepository(db *pgxpool.Pool) *CompletionAuditRepository {
	return &CompletionAuditRepository{db: db}
}

// RecordCompletion inserts audit, assigning its ID and CreatedAt
func (r *CompletionAuditRepository) RecordCompletion(ctx context.Context, audit *domain.CompletionAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}

	query := `
		INSERT INTO session_completion_audit
			(id, session_id, request_id, requested_by, success, rollback, total_stakes, platform_fee, net_payout, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		audit.ID,
		audit.SessionID,
		audit.RequestID,
		audit.RequestedBy,
		audit.Success,
		audit.Rollback,
		audit.TotalStakes,
		audit.PlatformFee,
		audit.NetPayout,
		audit.Error,
	).Scan(&audit.CreatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToRecordCompletion, err)
	}
	return nil
}

// ListCompletions returns the attempts for a session, newest first
func (r *CompletionAuditRepository) ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error) {
	query := `
		SELECT id::text, session_id::text, request_id, requested_by, success, rollback,
		       total_stakes, platform_fee, net_payout, error, created_at
		FROM session_completion_audit
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCompletions, err)
	}

	audits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CompletionAudit, error) {
		var a domain.CompletionAudit
		err := row.Scan(&a.ID, &a.SessionID, &a.RequestID, &a.RequestedBy, &a.Success, &a.Rollback,
			&a.TotalStakes, &a.PlatformFee, &a.NetPayout, &a.Error, &a.CreatedAt)
		return a, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCompletions, err)
	}
	return audits, nil
}
