package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// CheckoutRepository stores payment checkout records
type CheckoutRepository struct {
	db *pgxpool.Pool
}

// NewCheckoutRepository creates a new CheckoutRepository
func NewCheckoutRepository(db *pgxpool.Pool) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// CreateCheckout inserts record, assigning its ID, status and CreatedAt
func (r *CheckoutRepository) CreateCheckout(ctx context.Context, record *domain.CheckoutRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Status == "" {
		record.Status = domain.CheckoutStatusOpen
	}

	query := `
		INSERT INTO payment_checkouts (id, provider_session_id, kind, user_id, club_id, amount_cents, tokens, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		record.ID,
		record.ProviderSessionID,
		string(record.Kind),
		record.UserID,
		record.ClubID,
		record.AmountCents,
		record.Tokens,
		record.Status,
	).Scan(&record.CreatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToCreateCheckout, err)
	}
	return nil
}

// UpdateCheckoutStatus sets the status of the checkout created for providerSessionID
func (r *CheckoutRepository) UpdateCheckoutStatus(ctx context.Context, providerSessionID, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_checkouts
		SET status = $1, updated_at = NOW()
		WHERE provider_session_id = $2
	`, status, providerSessionID)
	if err != nil {
		return wrapErr(ErrMsgFailedToUpdateCheckout, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgCheckoutNotFound, providerSessionID)
	}
	return nil
}

// ListCheckoutsByUser returns the user's most recent checkouts
func (r *CheckoutRepository) ListCheckoutsByUser(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error) {
	query := `
		SELECT id::text, provider_session_id, kind, user_id, club_id, amount_cents, tokens, status, created_at
		FROM payment_checkouts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limitOrDefault(limit))
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCheckouts, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CheckoutRecord, error) {
		var c domain.CheckoutRecord
		var kind string
		err := row.Scan(&c.ID, &c.ProviderSessionID, &kind, &c.UserID, &c.ClubID, &c.AmountCents, &c.Tokens, &c.Status, &c.CreatedAt)
		c.Kind = domain.CheckoutKind(kind)
		return c, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCheckouts, err)
	}
	return records, nil
}

// ExpireStaleCheckouts marks open checkouts created before cutoff as expired
func (r *CheckoutRepository) ExpireStaleCheckouts(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_checkouts
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`, domain.CheckoutStatusExpired, domain.CheckoutStatusOpen, cutoff)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToExpireCheckouts, err)
	}
	return tag.RowsAffected(), nil
}
