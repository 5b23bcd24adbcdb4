package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if seen == "" {
		t.Fatalf("request id must be generated and stored in the context")
	}
	if got := w.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("response header = %q, context id = %q", got, seen)
	}
}

func TestRequestID_ClientSuppliedPreserved(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "client-id-1")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if seen != "client-id-1" {
		t.Fatalf("request id = %q, want client-id-1", seen)
	}
}
