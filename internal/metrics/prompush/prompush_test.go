package prompush

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rawg2ttl/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// readCounterValue reads the current value of a Counter for assertions.
func readCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Counter.Write() error = %v", err)
	}
	if m.GetCounter() == nil {
		t.Fatalf("metric did not contain Counter value")
	}
	return m.GetCounter().GetValue()
}

func TestNewBackend_RequiresGatewayURL(t *testing.T) {
	t.Parallel()

	if _, err := NewBackend("job", ""); err == nil {
		t.Fatalf("expected error for empty gateway URL")
	}
}

func TestIncCounter_RoutesByName(t *testing.T) {
	t.Parallel()

	b, err := NewBackend("gen", "http://localhost:9091")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}

	b.IncCounter("ttlgen_step_total", 1, metrics.Labels{"step": "emit", "status": "success"})
	b.IncCounter("ttlgen_rows_total", 42, metrics.Labels{"kind": "loaded"})
	b.IncCounter("ttlgen_batches_total", 2, nil)
	b.IncCounter("unknown_metric", 99, nil) // must be ignored

	if got := readCounterValue(t, b.stepCounter.WithLabelValues("emit", "success")); got != 1 {
		t.Fatalf("step counter = %v, want 1", got)
	}
	if got := readCounterValue(t, b.rowCounter.WithLabelValues("loaded")); got != 42 {
		t.Fatalf("row counter = %v, want 42", got)
	}
	if got := readCounterValue(t, b.batchCounter); got != 2 {
		t.Fatalf("batch counter = %v, want 2", got)
	}
}

func TestFlush_PushesToGateway(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b, err := NewBackend("gen", srv.URL)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	b.IncCounter("ttlgen_rows_total", 1, metrics.Labels{"kind": "loaded"})

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if gotPath != "/metrics/job/gen" {
		t.Fatalf("push path = %q, want /metrics/job/gen", gotPath)
	}
}
