package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}
	return byName
}

func TestHTTPMetricsObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/products", 200, 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/products", 200, 30*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/checkout", 422, 5*time.Millisecond)

	families := gather(t, reg)

	durations, ok := families["http_request_duration_seconds"]
	if !ok {
		t.Fatal("missing http_request_duration_seconds")
	}
	var sampled uint64
	for _, metric := range durations.GetMetric() {
		sampled += metric.GetHistogram().GetSampleCount()
	}
	if sampled != 3 {
		t.Fatalf("expected 3 duration samples, got %d", sampled)
	}

	requests, ok := families["http_requests_total"]
	if !ok {
		t.Fatal("missing http_requests_total")
	}
	if len(requests.GetMetric()) != 2 {
		t.Fatalf("expected 2 labeled series, got %d", len(requests.GetMetric()))
	}
}

func TestHTTPMetricsUnknownRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "", 404, time.Millisecond)

	families := gather(t, reg)
	requests := families["http_requests_total"]
	if requests == nil {
		t.Fatal("missing http_requests_total")
	}
	found := false
	for _, metric := range requests.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "route" && label.GetValue() == "unknown" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected empty route to be normalized to unknown")
	}
}

func TestHTTPMetricsOrdersCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.IncOrderSubmitted()
	m.IncOrderSubmitted()

	families := gather(t, reg)
	orders := families["orders_submitted_total"]
	if orders == nil {
		t.Fatal("missing orders_submitted_total")
	}
	if got := orders.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected 2 orders, got %v", got)
	}
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.IncOrderSubmitted()

	m = NewHTTPMetrics(nil)
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.IncOrderSubmitted()
}
