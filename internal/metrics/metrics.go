package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	searchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodpulse",
			Name:      "search_requests_total",
			Help:      "Count of search requests by content type.",
		},
		[]string{"content_type"},
	)

	searchCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "foodpulse",
			Name:      "search_cache_hits_total",
			Help:      "Count of search requests served from cache.",
		},
	)

	calculatorRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodpulse",
			Name:      "calculator_requests_total",
			Help:      "Count of calculator invocations by calculator.",
		},
		[]string{"calculator"},
	)

	contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodpulse",
			Name:      "contact_submissions_total",
			Help:      "Count of contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)

	newsletterSignups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodpulse",
			Name:      "newsletter_signups_total",
			Help:      "Count of newsletter signups by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(searchRequests, searchCacheHits, calculatorRequests, contactSubmissions, newsletterSignups)
	})
}

func IncSearchRequest(contentType string) {
	searchRequests.WithLabelValues(contentType).Inc()
}

func IncSearchCacheHit() {
	searchCacheHits.Inc()
}

func IncCalculatorRequest(calculator string) {
	calculatorRequests.WithLabelValues(calculator).Inc()
}

func IncContactSubmission(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}

func IncNewsletterSignup(outcome string) {
	newsletterSignups.WithLabelValues(outcome).Inc()
}
