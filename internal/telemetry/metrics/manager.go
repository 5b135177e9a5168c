package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterRestTimersStarted   prometheus.Counter
	CounterRestTimersCompleted prometheus.Counter
	CounterRestTimersSkipped   prometheus.Counter
	CounterRestTimersReversed  prometheus.Counter
	CounterWorkoutSets         prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests         prometheus.Gauge
	GaugeLifeSignal       prometheus.Gauge
	GaugeActiveRestTimers prometheus.Gauge

	// histograms
	HistRestDuration         prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterRestTimersStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_started",
		Help:      "The total number of started rest timers",
	})
	counterRestTimersCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_completed",
		Help:      "The total number of rest timers that ran out their grace window",
	})
	counterRestTimersSkipped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_skipped",
		Help:      "The total number of skipped rest timers",
	})
	counterRestTimersReversed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_reversed",
		Help:      "The total number of completions reversed by adding time in the grace window",
	})
	counterWorkoutSets := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_sets",
		Help:      "The total number of added workout sets",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})
	gaugeActiveRestTimers := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "active_rest_timers",
		Help:        "Current number of live rest timer engines",
		ConstLabels: nil,
	})

	histRestDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				5, 15, 30, 45, 60, 90,
				120, 180, 240, 300, 600,
			},
			Name: "rest_duration_seconds",
			Help: "Actually rested seconds per finished rest",
		},
	)

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterRestTimersStarted:   counterRestTimersStarted,
		CounterRestTimersCompleted: counterRestTimersCompleted,
		CounterRestTimersSkipped:   counterRestTimersSkipped,
		CounterRestTimersReversed:  counterRestTimersReversed,
		CounterWorkoutSets:         counterWorkoutSets,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeActiveRestTimers:      gaugeActiveRestTimers,
		HistRestDuration:           histRestDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
