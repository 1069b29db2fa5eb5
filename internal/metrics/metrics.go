package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "sada"

	calculationsTotal  = "calculations_total"
	calculationLatency = "calculation_duration_seconds"

	// Labels
	methodLabel  = "method"
	outcomeLabel = "outcome"
)

// Calculation outcomes
const (
	OutcomeOK            = "ok"
	OutcomeInvalidNumber = "invalid_number"
	OutcomeDomainError   = "domain_error"
	OutcomeError         = "error"
)

var calculationLabels = []string{
	methodLabel,
	outcomeLabel,
}

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      calculationsTotal,
		Help:      "number of calculations partitioned by method and outcome",
	},
	calculationLabels,
)

var calculationLatencyMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      calculationLatency,
		Help:      "time spent validating and computing one calculation",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	},
	[]string{methodLabel},
)

func IncreaseCalculationsTotalMetric(method, outcome string) {
	labels := prometheus.Labels{
		methodLabel:  method,
		outcomeLabel: outcome,
	}
	calculationsTotalMetric.With(labels).Inc()
}

func ObserveCalculationLatency(method string, seconds float64) {
	calculationLatencyMetric.WithLabelValues(method).Observe(seconds)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(calculationLatencyMetric)
	prometheus.MustRegister(requestsMetric)
	prometheus.MustRegister(requestLatencyMetric)
}
