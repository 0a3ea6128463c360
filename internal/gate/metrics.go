package gate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "offwhite",
		Subsystem: "gate",
		Name:      "decisions_total",
		Help:      "Gate verdicts by route class and outcome",
	}, []string{"class", "outcome"})

	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "offwhite",
		Subsystem: "gate",
		Name:      "auth_lookup_duration_seconds",
		Help:      "Auth API round-trip time for admin-protected requests",
		Buckets:   prometheus.DefBuckets,
	})

	lookupErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "offwhite",
		Subsystem: "gate",
		Name:      "auth_lookup_errors_total",
		Help:      "Failed auth API lookups, including timeouts",
	})
)

func observeDecision(class RouteClass, d Decision) {
	outcome := "redirect"
	if d.Allow {
		outcome = "allow"
	}
	decisionsTotal.WithLabelValues(string(class), outcome).Inc()
}

func observeLookup(elapsed time.Duration, err error) {
	lookupDuration.Observe(elapsed.Seconds())
	if err != nil {
		lookupErrors.Inc()
	}
}
