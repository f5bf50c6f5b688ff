package observability

import (
	"context"
	"testing"
)

func TestDisabledManager(t *testing.T) {
	om, err := NewObservabilityManager(ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m := om.GetMetrics(); m == nil {
		t.Fatal("expected non-nil metrics from a disabled manager")
	}

	tracer := om.Tracer("test")
	_, span := tracer.Start(context.Background(), "noop")
	span.End()

	if err := om.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown of a disabled manager failed: %v", err)
	}
}

func TestRecordBusinessMetricTypes(t *testing.T) {
	om, err := NewObservabilityManager(ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metrics := om.GetMetrics()

	// Every type the handlers emit, plus an unknown one. All must be
	// no-ops without initialized counters.
	for _, metricType := range []string{
		"resume_scored",
		"quality_evaluated",
		"suggestion_generated",
		"rate_limit_hit",
		"unknown_type",
	} {
		metrics.RecordBusinessMetric(context.Background(), metricType, true, om)
	}
}
