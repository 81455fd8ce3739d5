package dom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// MetricsConfig configures the prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "owlinweb").
	Namespace string

	// Subsystem is the metrics subsystem (default: "dom").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "owlinweb",
		Subsystem: "dom",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the prometheus metrics for one Mapper. Attach with
// WithMetrics; a nil *Metrics disables all recording.
//
// Metrics collected:
//   - owlinweb_dom_mappings_total: counter of first-time mappings by kind
//   - owlinweb_dom_cache_hits_total: counter of cache hits in MapNode
//   - owlinweb_dom_cache_misses_total: counter of cache misses in MapNode
//   - owlinweb_dom_removals_total: counter of cache removals
//   - owlinweb_dom_cache_entries: gauge of live cache entries
type Metrics struct {
	mappingsTotal *prometheus.CounterVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	removalsTotal prometheus.Counter
	cacheEntries  prometheus.Gauge
}

// NewMetrics creates and registers the mapper metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mappingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mappings_total",
			Help:        "Total number of first-time node mappings by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cache_hits_total",
			Help:        "Total number of identity cache hits",
			ConstLabels: config.ConstLabels,
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cache_misses_total",
			Help:        "Total number of identity cache misses",
			ConstLabels: config.ConstLabels,
		}),

		removalsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "removals_total",
			Help:        "Total number of cache removals",
			ConstLabels: config.ConstLabels,
		}),

		cacheEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cache_entries",
			Help:        "Number of live identity cache entries",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) cacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) cacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) mapped(kind host.NodeKind, entries int) {
	if m != nil {
		m.mappingsTotal.WithLabelValues(kind.String()).Inc()
		m.cacheEntries.Set(float64(entries))
	}
}

func (m *Metrics) removed(entries int) {
	if m != nil {
		m.removalsTotal.Inc()
		m.cacheEntries.Set(float64(entries))
	}
}
