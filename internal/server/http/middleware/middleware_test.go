package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/polkiloo/autoservice/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestDecompressRequestRejectsBadInput(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name     string
		encoding string
		want     int
	}{
		{"corrupt gzip", "gzip", http.StatusBadRequest},
		{"unsupported coding", "br", http.StatusUnsupportedMediaType},
		{"identity", "identity", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
			req.Header.Set("Content-Encoding", tc.encoding)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

type logRecord struct {
	Level  string `json:"level"`
	Route  string `json:"route"`
	Path   string `json:"path"`
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/api/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/ORD-000001", nil))
	var rec logRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if rec.Level != "INFO" || rec.Route != "/api/orders/:id" || rec.Path != "/api/orders/ORD-000001" || rec.Status != http.StatusOK {
		t.Fatalf("unexpected log record: %+v", rec)
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	rec = logRecord{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if rec.Level != "WARN" || rec.Error == "" {
		t.Fatalf("expected warn with error, got %+v", rec)
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	rec = logRecord{}
	_ = json.Unmarshal(buf.Bytes(), &rec)
	if rec.Route != "unmatched" || rec.Status != http.StatusNotFound {
		t.Fatalf("expected unmatched route, got %+v", rec)
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"ORD-000001", "ORD-000002"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/api/orders/:id", "200")); got != 2 {
		t.Fatalf("expected 2 requests on route template, got %v", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched request counted, got %v", got)
	}
	if n := testutil.CollectAndCount(m.LatencyMS); n != 2 {
		t.Fatalf("expected latency series per route, got %d", n)
	}
}
