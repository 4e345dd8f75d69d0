package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records checkout attempts and shipping-quote outcomes.
type CheckoutMetrics struct {
	duration      *prometheus.HistogramVec
	sessions      *prometheus.CounterVec
	quoteFailures *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout session assembly in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	quoteFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quote_failures_total",
		Help: "Shipping quote rejections by rule.",
	}, []string{"rule"})
	reg.MustRegister(duration, sessions, quoteFailures)
	return &CheckoutMetrics{
		duration:      duration,
		sessions:      sessions,
		quoteFailures: quoteFailures,
	}
}

// ObserveDuration records how long a checkout attempt took in the given mode
// ("live" or "synthetic").
func (c *CheckoutMetrics) ObserveDuration(mode string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(mode)).Observe(duration.Seconds())
}

// IncSession increments the session counter for the given outcome.
func (c *CheckoutMetrics) IncSession(outcome string) {
	if c == nil || c.sessions == nil {
		return
	}
	c.sessions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncQuoteFailure increments the quote-failure counter for the named rule.
func (c *CheckoutMetrics) IncQuoteFailure(rule string) {
	if c == nil || c.quoteFailures == nil {
		return
	}
	c.quoteFailures.WithLabelValues(normalizeLabel(rule)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
