package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Remote procedure metrics
var (
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRPCDuration,
			Help:    HelpTextRPCDuration,
			Buckets: RPCLatencyBuckets,
		},
		[]string{LabelFunction},
	)

	RPCFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRPCFailures,
			Help: HelpTextRPCFailures,
		},
		[]string{LabelFunction, LabelReason},
	)
)

// Realtime metrics
var (
	RealtimeUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRealtimeUpdates,
			Help: HelpTextRealtimeUpdates,
		},
		[]string{LabelKind},
	)

	RealtimeDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRealtimeDropped,
			Help: HelpTextRealtimeDropped,
		},
	)

	RealtimeSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRealtimeSubscribers,
			Help: HelpTextRealtimeSubscribers,
		},
	)
)

// Business Metrics
var (
	RewardCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardCalculations,
			Help: HelpTextRewardCalculations,
		},
		[]string{LabelSessionType},
	)

	SessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCompleted,
			Help: HelpTextSessionsCompleted,
		},
		[]string{LabelSessionType},
	)

	SessionsRolledBack = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsRolledBack,
			Help: HelpTextSessionsRolledBack,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	HPRestored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHPRestored,
			Help: HelpTextHPRestored,
		},
	)

	TokensRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensRedeemed,
			Help: HelpTextTokensRedeemed,
		},
	)

	CheckoutsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckoutsCreated,
			Help: HelpTextCheckoutsCreated,
		},
		[]string{LabelType},
	)
)
