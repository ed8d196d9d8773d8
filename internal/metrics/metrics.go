package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ListingRequests counts listing calls by result ("ok" | "error").
	ListingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparee_listing_requests_total",
			Help: "Total number of product listing requests.",
		},
		[]string{"result"},
	)

	ListingQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "comparee_listing_query_duration_seconds",
			Help:    "Duration of the ranked listing query in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
	)

	CampaignsPaused = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comparee_campaigns_paused_total",
			Help: "Campaigns paused by the budget sweep.",
		},
	)

	// GSCInspections counts URL inspections by outcome and error type.
	GSCInspections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparee_gsc_inspections_total",
			Help: "Search Console URL inspections.",
		},
		[]string{"outcome", "error_type"},
	)

	TranslationJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparee_translation_jobs_total",
			Help: "Translation outbox deliveries by status.",
		},
		[]string{"status"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparee_events_published_total",
			Help: "Domain events published to NATS.",
		},
		[]string{"subject", "result"},
	)

	// JobLastRun is the unix time of the last completed background job run.
	JobLastRun = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "comparee_job_last_run_timestamp",
			Help: "Timestamp (unix seconds) of the last completed job run.",
		},
		[]string{"job"},
	)
)

// ObserveListingQuery records the time elapsed since start.
func ObserveListingQuery(start time.Time) {
	ListingQueryDuration.Observe(time.Since(start).Seconds())
}

// IncListing counts a listing request.
func IncListing(err error) {
	ListingRequests.WithLabelValues(result(err)).Inc()
}

func IncGSCInspection(outcome, errorType string) {
	GSCInspections.WithLabelValues(outcome, errorType).Inc()
}

func IncTranslation(status string) {
	TranslationJobs.WithLabelValues(status).Inc()
}

func IncEvent(subject string, err error) {
	EventsPublished.WithLabelValues(subject, result(err)).Inc()
}

// MarkJobRun stamps JobLastRun for job with the current time.
func MarkJobRun(job string) {
	JobLastRun.WithLabelValues(job).SetToCurrentTime()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
