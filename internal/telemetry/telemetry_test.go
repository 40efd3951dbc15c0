package telemetry_test

import (
	"context"
	"testing"

	"percolate/internal/telemetry"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("PERCOLATE_OTEL_ENDPOINT", "")
	t.Setenv("PERCOLATE_OTEL_ENABLED", "")

	shutdown, err := telemetry.Setup(context.Background(), "percolate-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("PERCOLATE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("PERCOLATE_OTEL_ENABLED", "false")

	shutdown, err := telemetry.Setup(context.Background(), "percolate-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	t.Setenv("PERCOLATE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("PERCOLATE_OTEL_ENABLED", "")

	shutdown, err := telemetry.Setup(context.Background(), "percolate-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if telemetry.Tracer() == nil {
		t.Fatalf("expected a tracer")
	}

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
