package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

func TestRepositories_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	t.Run("completion audit round trip", func(t *testing.T) {
		repo := NewCompletionAuditRepository(pool)
		sessionID := uuid.NewString()

		first := &domain.CompletionAudit{SessionID: sessionID, RequestID: "req-1", RequestedBy: "u1", Success: false, Rollback: true, Error: "stake transfer failed"}
		require.NoError(t, repo.RecordCompletion(ctx, first))
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second := &domain.CompletionAudit{SessionID: sessionID, RequestID: "req-2", Success: true, TotalStakes: 200, PlatformFee: 20, NetPayout: 180}
		require.NoError(t, repo.RecordCompletion(ctx, second))

		audits, err := repo.ListCompletions(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, audits, 2)
		assert.Equal(t, "req-2", audits[0].RequestID)
		assert.Equal(t, 180, audits[0].NetPayout)
		assert.True(t, audits[1].Rollback)
	})

	t.Run("checkout lifecycle", func(t *testing.T) {
		repo := NewCheckoutRepository(pool)

		record := &domain.CheckoutRecord{
			ProviderSessionID: "cs_test_123",
			Kind:              domain.CheckoutHybridPayment,
			UserID:            "u1",
			ClubID:            "club-1",
			AmountCents:       1700,
			Tokens:            30,
		}
		require.NoError(t, repo.CreateCheckout(ctx, record))
		assert.Equal(t, domain.CheckoutStatusOpen, record.Status)

		require.NoError(t, repo.UpdateCheckoutStatus(ctx, "cs_test_123", domain.CheckoutStatusExpired))
		assert.Error(t, repo.UpdateCheckoutStatus(ctx, "cs_missing", domain.CheckoutStatusExpired))

		records, err := repo.ListCheckoutsByUser(ctx, "u1", 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.CheckoutStatusExpired, records[0].Status)
		assert.Equal(t, domain.CheckoutHybridPayment, records[0].Kind)
		assert.Equal(t, int64(1700), records[0].AmountCents)

		dup := &domain.CheckoutRecord{ProviderSessionID: "cs_test_123", Kind: domain.CheckoutTokenPack, UserID: "u1"}
		err = repo.CreateCheckout(ctx, dup)
		require.Error(t, err)
		assert.True(t, isPgCode(err, PgErrorCodeUniqueViolation))

		fresh := &domain.CheckoutRecord{ProviderSessionID: "cs_test_456", Kind: domain.CheckoutTokenPack, UserID: "u2", AmountCents: 500}
		require.NoError(t, repo.CreateCheckout(ctx, fresh))

		expired, err := repo.ExpireStaleCheckouts(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), expired, "recent checkouts stay open")

		expired, err = repo.ExpireStaleCheckouts(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), expired, "only open checkouts are swept")
	})

	t.Run("player status", func(t *testing.T) {
		repo := NewPlayerRepository(pool)
		withXP := uuid.NewString()
		hpOnly := uuid.NewString()

		_, err := pool.Exec(ctx, `INSERT INTO player_hp (player_id, current_hp, max_hp) VALUES ($1, 64, 100), ($2, 30, 100)`, withXP, hpOnly)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `INSERT INTO player_xp (player_id, current_xp, total_xp_earned, current_level, xp_to_next_level) VALUES ($1, 50, 450, 3, 451)`, withXP)
		require.NoError(t, err)

		status, err := repo.GetPlayerStatus(ctx, withXP)
		require.NoError(t, err)
		assert.Equal(t, 64, status.CurrentHP)
		assert.Equal(t, 3, status.CurrentLevel)
		assert.Equal(t, 450, status.TotalXPEarned)
		assert.Nil(t, status.LastActivityAt)

		status, err = repo.GetPlayerStatus(ctx, hpOnly)
		require.NoError(t, err)
		assert.Equal(t, 1, status.CurrentLevel)
		assert.Equal(t, 0, status.CurrentXP)

		_, err = repo.GetPlayerStatus(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

		_, err = repo.GetPlayerStatus(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}
