package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus registry and instruments.
// It is constructed once at startup and handed to the components that
// record into it; nothing registers against the global registry.
type Collector struct {
	reg *prometheus.Registry

	DirectionsCalls  prometheus.Counter
	DirectionsErrors prometheus.Counter

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	AdjustmentsComputed prometheus.Counter
	UnmatchedRoutes     prometheus.Counter

	OpDuration *prometheus.HistogramVec // op label: directions.GetRoutes, ...
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		DirectionsCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_directions_requests_total",
			Help: "Total calls issued to the directions provider.",
		}),
		DirectionsErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_directions_errors_total",
			Help: "Total failed directions provider calls.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_directions_cache_hits_total",
			Help: "Directions lookups served from cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_directions_cache_misses_total",
			Help: "Directions lookups that went to the provider.",
		}),
		AdjustmentsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_adjustments_computed_total",
			Help: "Route adjustments computed.",
		}),
		UnmatchedRoutes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traffic_unmatched_routes_total",
			Help: "Routes where no street matched the reference dataset.",
		}),
		OpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "traffic_op_duration_seconds",
			Help:    "Duration of internal operations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.DirectionsCalls, c.DirectionsErrors,
		c.CacheHits, c.CacheMisses,
		c.AdjustmentsComputed, c.UnmatchedRoutes,
		c.OpDuration,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
