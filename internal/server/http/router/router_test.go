package router

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/metrics"
	testhelpers "github.com/polkiloo/autoservice/internal/test"
)

func newTestEngine(facade *testhelpers.ShopFacadeStub) *gin.Engine {
	engine := Setup(routerParams{
		Facade:  facade,
		Metrics: metrics.New(),
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	gin.SetMode(gin.TestMode)
	return engine
}

func TestSetupRoutes(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{View: catalog.View{Query: model.DefaultOrderQuery()}}
	engine := newTestEngine(facade)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/ping", "", http.StatusOK},
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodGet, "/api/orders/ORD-000001", "", http.StatusOK},
		{http.MethodPost, "/api/orders", `{"clientId":"1","serviceIds":["1"],"scheduledDate":"2024-03-04T10:00:00Z"}`, http.StatusCreated},
		{http.MethodPut, "/api/orders/ORD-000001", `{"clientId":"1"}`, http.StatusOK},
		{http.MethodDelete, "/api/orders/ORD-000001", "", http.StatusNoContent},
		{http.MethodPut, "/api/orders/query/search", `{"query":"bmw"}`, http.StatusOK},
		{http.MethodPut, "/api/orders/query/status", `{"status":"all"}`, http.StatusOK},
		{http.MethodPut, "/api/orders/query/sort", `{"field":"price"}`, http.StatusOK},
		{http.MethodPost, "/api/orders/query/sort/toggle", "", http.StatusOK},
		{http.MethodGet, "/api/calendar/appointments", "", http.StatusOK},
		{http.MethodGet, "/api/calendar/appointments/APT-1", "", http.StatusOK},
		{http.MethodPost, "/api/calendar/appointments", `{"startTime":"2024-03-04T10:00:00Z","endTime":"2024-03-04T11:00:00Z"}`, http.StatusCreated},
		{http.MethodPut, "/api/calendar/appointments/APT-1", `{"startTime":"2024-03-04T10:00:00Z","endTime":"2024-03-04T11:00:00Z"}`, http.StatusOK},
		{http.MethodDelete, "/api/calendar/appointments/APT-1", "", http.StatusNoContent},
		{http.MethodPost, "/api/calendar/appointments/APT-1/move", `{"start":"2024-03-04T12:00:00Z"}`, http.StatusOK},
		{http.MethodPost, "/api/calendar/appointments/APT-1/relocate", `{"weekStart":"2024-03-04T00:00:00Z","slot":"1-10"}`, http.StatusOK},
		{http.MethodPost, "/api/calendar/orders/ORD-000001/schedule", `{"start":"2024-03-04T12:00:00Z"}`, http.StatusCreated},
		{http.MethodGet, "/api/calendar/week?date=2024-03-04T00:00:00Z", "", http.StatusOK},
		{http.MethodGet, "/api/calendar/day", "", http.StatusOK},
		{http.MethodGet, "/api/calendar/selected-date", "", http.StatusOK},
		{http.MethodPut, "/api/calendar/selected-date", `{"date":"2024-03-04T00:00:00Z"}`, http.StatusOK},
		{http.MethodGet, "/api/dashboard/stats", "", http.StatusOK},
		{http.MethodGet, "/api/dashboard/chart", "", http.StatusOK},
		{http.MethodGet, "/api/reference/services", "", http.StatusOK},
		{http.MethodGet, "/api/reference/clients", "", http.StatusOK},
		{http.MethodGet, "/api/reference/statuses", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp := httptest.NewRecorder()
			engine.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected status %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestSetupCompressionAndMetrics(t *testing.T) {
	engine := newTestEngine(&testhelpers.ShopFacadeStub{View: catalog.View{Query: model.DefaultOrderQuery()}})

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"query":"camry"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/orders/query/search", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for gzip request, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatal("expected gzip response")
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `autoservice_http_requests_total{method="PUT",route="/api/orders/query/search",status="200"} 1`) {
		t.Fatalf("expected request counted in exposition, got %s", resp.Body.String())
	}
}
