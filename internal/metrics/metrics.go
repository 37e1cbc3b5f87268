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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	TiersAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTiersAdvanced,
			Help: HelpTextTiersAdvanced,
		},
		[]string{LabelTier},
	)

	RewardsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsIssued,
			Help: HelpTextRewardsIssued,
		},
	)

	EssenceFromRewards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEssenceFromRewards,
			Help: HelpTextEssenceFromRewards,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	HarmonySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarmonySpent,
			Help: HelpTextHarmonySpent,
		},
	)

	PurchaseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseFailures,
			Help: HelpTextPurchaseFailures,
		},
		[]string{LabelReason},
	)

	TicksProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTicksProcessed,
			Help: HelpTextTicksProcessed,
		},
		[]string{LabelSource},
	)

	ProgressSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProgressSaves,
			Help: HelpTextProgressSaves,
		},
		[]string{LabelReason},
	)

	ProgressSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProgressSaveFailures,
			Help: HelpTextProgressSaveFailures,
		},
	)

	ProgressResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProgressResets,
			Help: HelpTextProgressResets,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
