package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsAreIndependentPerInstance(t *testing.T) {
	first := New()
	second := New()

	first.Requests.WithLabelValues("GET", "/ping", "200").Inc()
	if got := testutil.ToFloat64(first.Requests.WithLabelValues("GET", "/ping", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
	if got := testutil.ToFloat64(second.Requests.WithLabelValues("GET", "/ping", "200")); got != 0 {
		t.Fatalf("expected separate registries, got %v", got)
	}
}

func TestTrackCollection(t *testing.T) {
	m := New()
	size := 3
	if err := m.TrackCollection("orders", func() int { return size }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.TrackCollection("orders", func() int { return 0 }); err == nil {
		t.Fatal("expected duplicate registration error")
	}

	size = 5
	expected := `
# HELP autoservice_collection_size Number of records held in memory.
# TYPE autoservice_collection_size gauge
autoservice_collection_size{collection="orders"} 5
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "autoservice_collection_size"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.OutboxPending.Set(7)
	m.EventsPublished.WithLabelValues("order.created").Add(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"autoservice_relay_outbox_pending 7",
		`autoservice_relay_events_published_total{type="order.created"} 2`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in exposition", want)
		}
	}
}
