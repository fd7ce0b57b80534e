package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// PlayerRepository reads the backend-owned player_hp and player_xp tables
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetPlayerStatus joins HP and XP state. A player without an XP row is
// reported at level 1 with no XP. Malformed IDs cannot exist and are
// reported as not found.
func (r *PlayerRepository) GetPlayerStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error) {
	query := `
		SELECT hp.player_id::text, hp.current_hp, hp.max_hp,
		       COALESCE(xp.current_level, 1), COALESCE(xp.current_xp, 0),
		       COALESCE(xp.total_xp_earned, 0), COALESCE(xp.xp_to_next_level, 0),
		       hp.last_activity
		FROM player_hp hp
		LEFT JOIN player_xp xp ON xp.player_id = hp.player_id
		WHERE hp.player_id = $1
	`
	if _, err := uuid.Parse(playerID); err != nil {
		return nil, domain.ErrPlayerNotFound
	}

	var s domain.PlayerStatus
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&s.PlayerID, &s.CurrentHP, &s.MaxHP,
		&s.CurrentLevel, &s.CurrentXP,
		&s.TotalXPEarned, &s.XPToNextLevel,
		&s.LastActivityAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPlayerStatus, err)
	}
	return &s, nil
}
