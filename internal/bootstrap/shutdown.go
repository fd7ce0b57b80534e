package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/realtime"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/server"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server         *server.Server
	Realtime       *realtime.Manager
	StopBackground context.CancelFunc
	Sweeper        *worker.CheckoutSweeper
	DBPool         database.Pool
}

// GracefulShutdown closes realtime streams, drains the HTTP server, stops
// background loops and closes the pool last. Errors are logged and do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// open SSE streams only end once their subscriptions close
	if c.Realtime != nil {
		slog.Info(LogMsgClosingRealtime)
		c.Realtime.Close()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.StopBackground != nil {
		c.StopBackground()
	}

	if c.Sweeper != nil {
		if err := c.Sweeper.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", "checkout_sweeper", "error", err)
		}
	}

	if c.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
