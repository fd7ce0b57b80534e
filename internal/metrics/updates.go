package metrics

import (
	"context"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
)

// UpdateMetricsCollector records player updates arriving on the change feed
type UpdateMetricsCollector struct{}

// NewUpdateMetricsCollector creates a new update metrics collector
func NewUpdateMetricsCollector() *UpdateMetricsCollector {
	return &UpdateMetricsCollector{}
}

// HandleUpdate counts the update by kind. Its signature matches the
// realtime manager's update handler so it can be registered directly.
func (c *UpdateMetricsCollector) HandleUpdate(ctx context.Context, update domain.PlayerUpdate) {
	RealtimeUpdates.WithLabelValues(string(update.Kind)).Inc()

	logger.FromContext(ctx).Debug(LogMsgUpdateRecorded, "kind", update.Kind, "player_id", update.PlayerID)
}
