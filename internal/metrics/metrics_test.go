package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollectorRecordsRequests(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, http.StatusOK, 5*time.Millisecond)
	c.RecordRequest(http.MethodPost, http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `linkstash_http_requests_total{method="GET",status_code="200"} 1`) {
		t.Errorf("exposition missing GET counter:\n%s", body)
	}
	if !strings.Contains(body, `linkstash_http_requests_total{method="POST",status_code="201"} 1`) {
		t.Errorf("exposition missing POST counter:\n%s", body)
	}
	if !strings.Contains(body, "linkstash_http_request_duration_seconds") {
		t.Error("exposition missing duration histogram")
	}
}

func TestMiddlewareObservesStatus(t *testing.T) {
	c := NewCollector()

	h := c.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	exp := httptest.NewRecorder()
	c.Handler().ServeHTTP(exp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(exp.Body.String(), `status_code="404"`) {
		t.Error("middleware did not record the handler status")
	}
}
