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

// Game Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction, LabelResult},
	)

	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksTotal,
			Help: HelpTextTicksTotal,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	AchievementsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
	)

	PrestigesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestigesTotal,
			Help: HelpTextPrestigesTotal,
		},
	)

	CriticalHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCriticalHits,
			Help: HelpTextCriticalHits,
		},
	)

	Currency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrency,
			Help: HelpTextCurrency,
		},
	)

	LifetimeCurrency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLifetimeCurrency,
			Help: HelpTextLifetimeCurrency,
		},
	)

	JobsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsDropped,
			Help: HelpTextJobsDropped,
		},
		[]string{LabelJob},
	)
)

// Event stream metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamEventsDropped,
			Help: HelpTextStreamEventsDropped,
		},
		[]string{LabelReason},
	)
)

// Persistence Metrics
var (
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
		[]string{LabelOperation, LabelBackend, LabelResult},
	)

	SaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOperation, LabelBackend},
	)
)

// RecordAction counts one action attempt by outcome.
func RecordAction(action string, err error, rejected bool) {
	result := ResultOK
	switch {
	case err != nil && rejected:
		result = ResultRejected
	case err != nil:
		result = ResultError
	}
	ActionsTotal.WithLabelValues(action, result).Inc()
}
