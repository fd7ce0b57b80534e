package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database/postgres"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/repository"
)

// Repositories holds the repository implementations used by the services
type Repositories struct {
	Players     repository.PlayerReader
	Completions repository.CompletionAudit
	Checkouts   repository.Checkout
}

// InitializeRepositories creates all repository implementations on dbPool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Players:     postgres.NewPlayerRepository(dbPool),
		Completions: postgres.NewCompletionAuditRepository(dbPool),
		Checkouts:   postgres.NewCheckoutRepository(dbPool),
	}
}
