// Package metrics exports Prometheus counters for results and retries.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/fault"
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
	OutcomeEmpty     = "empty"
)

// RetryMetrics groups the collectors of one namespace
type RetryMetrics struct {
	// RetryAttempts counts the retries scheduled after a failed attempt
	RetryAttempts *prometheus.CounterVec
	// RetryDelay tracks the backoff waits
	RetryDelay prometheus.Histogram
	// Results counts observed results per outcome
	Results *prometheus.CounterVec
}

// NewRetryMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewRetryMetrics(reg prometheus.Registerer, namespace string) *RetryMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &RetryMetrics{
		RetryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "retry_attempts_total",
				Help:      "Total number of retries after a failed attempt",
			},
			[]string{"error_kind"},
		),
		RetryDelay: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "retry_delay_seconds",
				Help:      "Backoff wait before a retry in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		Results: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "results_total",
				Help:      "Total number of observed results",
			},
			[]string{"outcome"},
		),
	}
}

// OnRetry matches retry.Options.OnRetry.
func (m *RetryMetrics) OnRetry(_ int, err error, nextDelay time.Duration) {
	m.RetryAttempts.WithLabelValues(errorKind(err)).Inc()
	m.RetryDelay.Observe(nextDelay.Seconds())
}

// Observe counts r by its outcome.
func (m *RetryMetrics) Observe(r rop.Outcome) {
	m.Results.WithLabelValues(OutcomeOf(r)).Inc()
}

// OutcomeOf returns the outcome label of r.
func OutcomeOf(r rop.Outcome) string {
	switch {
	case r.IsSuccess():
		return OutcomeSuccess
	case r.IsCancelled():
		return OutcomeCancelled
	case r.IsFailure():
		return OutcomeFailure
	default:
		return OutcomeEmpty
	}
}

func errorKind(err error) string {
	var f *fault.Fault
	if errors.As(err, &f) {
		return f.Kind().String()
	}
	return "Error"
}
