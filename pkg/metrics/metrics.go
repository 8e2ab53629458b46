// Package metrics exposes Prometheus metrics for vmini render cycles.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render phases used as the "phase" label.
const (
	PhaseMount  = "mount"
	PhaseUpdate = "update"
)

// Config configures the Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "vmini").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vmini",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records render-cycle metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	renders       *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	renderErrors  *prometheus.CounterVec
	notifications prometheus.Counter
	dependencies  prometheus.Gauge
}

// New registers the metrics and returns a Collector.
// Registering twice against the same registry panics, as with promauto.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of completed render cycles",
			ConstLabels: config.ConstLabels,
		}, []string{"phase"}),

		renderSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render plus materialization duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"phase"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed render cycles",
			ConstLabels: config.ConstLabels,
		}, []string{"phase"}),

		notifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_total",
			Help:        "Total number of change notifications delivered to instances",
			ConstLabels: config.ConstLabels,
		}),

		dependencies: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dependencies",
			Help:        "Number of data keys the last render pass depended on",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveRender records one render cycle for phase.
func (c *Collector) ObserveRender(phase string, d time.Duration, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.renderErrors.WithLabelValues(phase).Inc()
		return
	}
	c.renders.WithLabelValues(phase).Inc()
	c.renderSeconds.WithLabelValues(phase).Observe(d.Seconds())
}

// Notified records a notification delivered to an instance.
func (c *Collector) Notified() {
	if c == nil {
		return
	}
	c.notifications.Inc()
}

// SetDependencies records the size of the current dependency set.
func (c *Collector) SetDependencies(n int) {
	if c == nil {
		return
	}
	c.dependencies.Set(float64(n))
}
