// Package metrics collects and exposes Prometheus metrics for the
// authentication flow, the storefront cache and the reminder pass.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup results.
const (
	CacheHit      = "hit"
	CacheFetched  = "fetched"
	CacheConflict = "conflict"
	CacheMiss     = "miss"
)

// Recorder is the metrics sink used by the adapter, service and worker layers.
type Recorder interface {
	RecordAuthOutcome(outcome string)
	RecordVendorStatus(endpoint string, statusCode int)
	RecordCacheLookup(result string)
	RecordReminderOutcome(outcome string)
	RecordPassDuration(duration time.Duration)
}

// Collector is the Prometheus implementation of [Recorder].
type Collector struct {
	authOutcomes     *prometheus.CounterVec
	vendorStatus     *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	reminderOutcomes *prometheus.CounterVec
	passDuration     prometheus.Histogram
	lastPass         prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		authOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laptop_auth_outcomes_total",
			Help: "Vendor authorization attempts by outcome",
		}, []string{"outcome"}),
		vendorStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laptop_vendor_http_status_total",
			Help: "Vendor HTTP responses by endpoint and status code",
		}, []string{"endpoint", "status_code"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laptop_storefront_cache_lookups_total",
			Help: "Storefront cache lookups by result",
		}, []string{"result"}),
		reminderOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laptop_reminder_outcomes_total",
			Help: "Per-subscriber reminder outcomes",
		}, []string{"outcome"}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "laptop_reminder_pass_duration_seconds",
			Help:    "Duration of a full reminder pass",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		lastPass: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "laptop_reminder_last_pass_timestamp_seconds",
			Help: "Unix time the last reminder pass completed",
		}),
	}

	reg.MustRegister(
		c.authOutcomes,
		c.vendorStatus,
		c.cacheLookups,
		c.reminderOutcomes,
		c.passDuration,
		c.lastPass,
	)

	return c
}

func (c *Collector) RecordAuthOutcome(outcome string) {
	c.authOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordVendorStatus(endpoint string, statusCode int) {
	c.vendorStatus.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordCacheLookup(result string) {
	c.cacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) RecordReminderOutcome(outcome string) {
	c.reminderOutcomes.WithLabelValues(outcome).Inc()
}

// RecordPassDuration observes a completed pass and stamps its completion time.
func (c *Collector) RecordPassDuration(duration time.Duration) {
	c.passDuration.Observe(duration.Seconds())
	c.lastPass.SetToCurrentTime()
}

type nop struct{}

// Nop returns a Recorder that discards everything.
func Nop() Recorder { return nop{} }

func (nop) RecordAuthOutcome(string)         {}
func (nop) RecordVendorStatus(string, int)   {}
func (nop) RecordCacheLookup(string)         {}
func (nop) RecordReminderOutcome(string)     {}
func (nop) RecordPassDuration(time.Duration) {}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
