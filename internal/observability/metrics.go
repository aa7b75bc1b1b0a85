package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Pipeline metrics
	EventsDecoded   prometheus.Counter
	EventsConverted *prometheus.CounterVec

	// Encoder metrics
	EncodeDuration *prometheus.HistogramVec
	FallbackRuns   prometheus.Counter

	// Storage metrics
	FramesWritten *prometheus.CounterVec
	FrameSize     *prometheus.HistogramVec
	StorageErrors *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		EventsDecoded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "events_decoded_total",
				Help: "Total number of events decoded from input",
			},
		),
		EventsConverted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_converted_total",
				Help: "Total number of events processed, by outcome",
			},
			[]string{"event_type", "status"},
		),
		EncodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "encode_duration_seconds",
				Help:    "Duration of frame encoding operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		FallbackRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "encoder_fallback_runs_total",
				Help: "Total number of runs that degraded to JSON frames",
			},
		),
		FramesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frames_written_total",
				Help: "Total number of frames written to storage",
			},
			[]string{"backend", "status"},
		),
		FrameSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frame_size_bytes",
				Help:    "Size of frames written to storage",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"backend"},
		),
		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storage_errors_total",
				Help: "Total number of storage errors",
			},
			[]string{"backend", "operation"},
		),
	}
}

// IncEventsDecoded adds to the decoded events counter.
func (m *Metrics) IncEventsDecoded(count int) {
	m.EventsDecoded.Add(float64(count))
}

// IncEventsConverted increments the per-outcome conversion counter.
func (m *Metrics) IncEventsConverted(eventType string, status string) {
	m.EventsConverted.WithLabelValues(eventType, status).Inc()
}

// ObserveEncodeDuration observes one encode invocation.
func (m *Metrics) ObserveEncodeDuration(format string, duration float64) {
	m.EncodeDuration.WithLabelValues(format).Observe(duration)
}

// IncFallbackRuns increments the degraded-run counter.
func (m *Metrics) IncFallbackRuns() {
	m.FallbackRuns.Inc()
}

// IncFramesWritten increments the frames written counter.
func (m *Metrics) IncFramesWritten(backend string, status string) {
	m.FramesWritten.WithLabelValues(backend, status).Inc()
}

// ObserveFrameSize observes the size of one written frame.
func (m *Metrics) ObserveFrameSize(backend string, size float64) {
	m.FrameSize.WithLabelValues(backend).Observe(size)
}

// IncStorageErrors increments the storage errors counter.
func (m *Metrics) IncStorageErrors(backend string, operation string) {
	m.StorageErrors.WithLabelValues(backend, operation).Inc()
}
