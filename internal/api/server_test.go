package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/khanhnv2901/deepscan/internal/analyzer"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Config{Logger: zaptest.NewLogger(t)})
}

func TestStatusRoute(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/health"} {
		rr := httptest.NewRecorder()
		s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rr.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s: invalid JSON: %v", path, err)
		}
		if body["status"] != "running" {
			t.Errorf("GET %s: expected running status, got %q", path, body["status"])
		}
	}
}

func TestAnalyzeRoute(t *testing.T) {
	s := newTestServer(t)

	batch := `[{"url":"http://a","content":"<script>alert(1)</script>","headers":{"server":"nginx"}}]`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(batch))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	var report analyzer.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid report JSON: %v", err)
	}
	if len(report.EnhancedIssues) != 2 {
		t.Errorf("expected 2 findings (xss + server disclosure), got %d", len(report.EnhancedIssues))
	}
	if report.URLsAnalyzed != 1 {
		t.Errorf("expected 1 url analyzed, got %d", report.URLsAnalyzed)
	}
	if report.SeverityCounts[analyzer.SeverityHigh] != 1 || report.SeverityCounts[analyzer.SeverityMedium] != 1 {
		t.Errorf("unexpected severity counts: %v", report.SeverityCounts)
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{"not":"a list"}`, `not json at all`, `42`} {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		rr := httptest.NewRecorder()
		s.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rr.Code)
		}
		var envelope map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("body %q: invalid error JSON: %v", body, err)
		}
		if envelope["status"] != "failed" || envelope["error"] == "" {
			t.Errorf("body %q: unexpected error envelope: %v", body, envelope)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var envelope map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if envelope["status"] != "failed" {
		t.Errorf("expected failed status, got %v", envelope)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyze", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive CORS by default, got %q", got)
	}

	// Preflight requests short-circuit before the mux.
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/analyze", nil))
	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rr.Code)
	}
}

func TestCORSOriginWhitelist(t *testing.T) {
	s := NewServer(Config{CORSOrigins: []string{"http://allowed.example"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://allowed.example")
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.example" {
		t.Errorf("expected whitelisted origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for unlisted origin, got %q", got)
	}
}

func TestRateLimit(t *testing.T) {
	s := NewServer(Config{RateLimit: 1, RateBurst: 1, Logger: zaptest.NewLogger(t)})

	first := httptest.NewRecorder()
	s.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	s.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request rate limited, got %d", second.Code)
	}
}
