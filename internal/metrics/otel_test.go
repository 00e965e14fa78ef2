package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsPrometheusMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt("espn", time.Millisecond, errors.New("boom"))
	rec.RecordSkippedEvents("espn", 2)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, name := range []string{"http_requests_total", "provider_attempts_total", "provider_errors_total", "provider_skipped_events_total"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("expected %s in scrape output", name)
		}
	}
	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected in-memory stats alongside otel, got %d errors", got)
	}
}

func TestSetupPropagatesFactoryErrors(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}
	defer func() { promReaderFactory = orig }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected prometheus setup error to propagate")
	}
}

func TestSetupWithOTLPReader(t *testing.T) {
	orig := otlpReaderFactory
	called := false
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		called = true
		if endpoint != "collector:4318" || !insecure {
			t.Fatalf("unexpected otlp args %s %v", endpoint, insecure)
		}
		return sdkmetric.NewManualReader(), nil
	}
	defer func() { otlpReaderFactory = orig }()

	_, _, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:      true,
		OtlpEndpoint: "collector:4318",
		OtlpInsecure: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_ = shutdown(context.Background())
	if !called {
		t.Fatalf("expected otlp reader factory to be used")
	}
}
