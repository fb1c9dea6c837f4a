// metrics.go - Prometheus counters for circulation activity

package metrics // Declares the package name

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"          // Metric types
	"github.com/prometheus/client_golang/prometheus/promauto" // Auto-registering constructors
	"github.com/prometheus/client_golang/prometheus/promhttp" // Scrape handler
)

var (
	// BorrowsTotal counts successfully recorded borrow transactions.
	BorrowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_borrows_total",
		Help: "Number of borrow transactions recorded.",
	})

	// ReturnsTotal counts successfully closed loans.
	ReturnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_returns_total",
		Help: "Number of loans closed by a return.",
	})

	// FinesAssessedTotal accumulates the fine amounts charged on late returns.
	FinesAssessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_fines_assessed_total",
		Help: "Total fine amount assessed on late returns.",
	})

	// AuthFailuresTotal counts requests rejected by the auth middleware.
	AuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_auth_failures_total",
		Help: "Number of requests rejected for missing or invalid tokens.",
	})
)

// Handler returns the HTTP handler serving the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
