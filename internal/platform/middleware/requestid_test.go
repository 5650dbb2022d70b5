package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveWithRequestID(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	if header != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	rec := serveWithRequestID(t, "")
	id := rec.Header().Get(chimiddleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated UUID, got %q: %v", id, err)
	}
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	rec := serveWithRequestID(t, "client-supplied-id-42")
	if got := rec.Header().Get(chimiddleware.RequestIDHeader); got != "client-supplied-id-42" {
		t.Fatalf("expected client id echoed, got %q", got)
	}
}

func TestRequestIDReplacesInvalidHeader(t *testing.T) {
	cases := map[string]string{
		"control chars": "bad\x00id",
		"too long":      strings.Repeat("x", 200),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serveWithRequestID(t, header)
			got := rec.Header().Get(chimiddleware.RequestIDHeader)
			if got == header {
				t.Fatal("invalid header must be replaced")
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected replacement UUID, got %q", got)
			}
		})
	}
}
