package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	// Exercise every collector once; gathering catches registration issues.
	metrics.IncEventsDecoded(3)
	metrics.IncEventsConverted("placement_decision", "success")
	metrics.IncEventsConverted("unknown_kind", "unsupported_event")
	metrics.ObserveEncodeDuration("bebop", 0.02)
	metrics.IncFallbackRuns()
	metrics.IncFramesWritten("file", "success")
	metrics.ObserveFrameSize("file", 512)
	metrics.IncStorageErrors("s3", "upload")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) == 0 {
		t.Error("expected gathered metric families")
	}
}

func TestNewMetricsDoubleRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewMetrics(registry)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewMetrics(registry)
}
