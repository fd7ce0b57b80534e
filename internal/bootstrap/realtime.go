package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/realtime"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

// StartRealtime builds the connection manager, registers the cache
// invalidation and metrics hooks, and starts listening in the background.
// The listen loop stops when ctx is cancelled.
func StartRealtime(ctx context.Context, dbPool *pgxpool.Pool, schemas validation.SchemaValidator, channel string, players player.Service) *realtime.Manager {
	manager := realtime.NewManager(realtime.NewPgListener(dbPool), schemas, channel)

	manager.OnUpdate(player.InvalidateOnUpdate(players))
	manager.OnUpdate(metrics.NewUpdateMetricsCollector().HandleUpdate)
	slog.Info(LogMsgUpdateHandlersRegistered)

	go manager.Start(ctx)
	slog.Info(LogMsgRealtimeStarted, "channel", channel)

	return manager
}
