package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationState is one embedded migration and whether it has been applied
type MigrationState struct {
	Version int64
	Source  string
	Applied bool
}

// Migrate applies the service's own tables with goose. Tables owned by the
// hosted backend (player_hp, player_xp and the stored functions) are not
// managed here.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withProvider(pool, func(provider *goose.Provider) error {
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}

		if len(results) == 0 {
			slog.Default().Info(LogMsgMigrationsUpToDate)
		}
		for _, r := range results {
			slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
		}
		return nil
	})
}

// MigrateDown rolls back the most recently applied migration
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	return withProvider(pool, func(provider *goose.Provider) error {
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRollback, err)
		}
		slog.Default().Info(LogMsgMigrationRolledBack, "version", result.Source.Version, "duration", result.Duration)
		return nil
	})
}

// MigrationStatus lists every embedded migration in version order
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]MigrationState, error) {
	var states []MigrationState
	err := withProvider(pool, func(provider *goose.Provider) error {
		results, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
		}
		states = make([]MigrationState, 0, len(results))
		for _, r := range results {
			states = append(states, MigrationState{
				Version: r.Source.Version,
				Source:  r.Source.Path,
				Applied: r.State == goose.StateApplied,
			})
		}
		return nil
	})
	return states, err
}

func withProvider(pool *pgxpool.Pool, fn func(*goose.Provider) error) error {
	fsys, err := fs.Sub(migrationsFS, migrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return fn(provider)
}
