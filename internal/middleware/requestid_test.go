package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveWithRequestID(t *testing.T, headerID string) (captured string, rec *httptest.ResponseRecorder) {
	t.Helper()
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerID != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, headerID)
	}

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))
	h.ServeHTTP(rec, req)
	return captured, rec
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, rec := serveWithRequestID(t, "")

	if captured == "" {
		t.Fatalf("expected generated request ID")
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	captured, rec := serveWithRequestID(t, "external-id")

	if captured != "external-id" {
		t.Fatalf("expected request ID to remain external-id, got %q", captured)
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != "external-id" {
		t.Fatalf("expected header external-id, got %q", header)
	}
}

func TestRequestIDRejectsInvalidHeaders(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		wantNew bool
	}{
		{"valid UUID is preserved", "550e8400-e29b-41d4-a716-446655440000", false},
		{"valid alphanumeric is preserved", "abc123-XYZ", false},
		{"newline causes rejection", "valid\ninjected-line", true},
		{"null byte causes rejection", "valid\x00null", true},
		{"high byte causes rejection", "valid\x80high", true},
		{"too long causes rejection", strings.Repeat("a", 129), true},
		{"exactly max length is preserved", strings.Repeat("x", 128), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			captured, _ := serveWithRequestID(t, tc.inputID)
			if tc.wantNew {
				if captured == tc.inputID {
					t.Fatalf("expected new UUID, but got original: %q", captured)
				}
				if _, err := uuid.Parse(captured); err != nil {
					t.Fatalf("expected valid UUID, got %q: %v", captured, err)
				}
			} else if captured != tc.inputID {
				t.Fatalf("expected %q, got %q", tc.inputID, captured)
			}
		})
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"", false},
		{"a", true},
		{"ABC-xyz_123.456", true},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
		{"hello\nworld", false},
		{"hello\tworld", false},
		{"hello\x7fworld", false},
		{"special!@#$%^&*()", true},
		{" leading space", true},
	}

	for _, tc := range tests {
		if got := isValidRequestID(tc.id); got != tc.valid {
			t.Errorf("isValidRequestID(%q) = %v, want %v", tc.id, got, tc.valid)
		}
	}
}

func TestRequestIDUniqueAcrossRequests(t *testing.T) {
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ids := make(map[string]bool)
	for i := range 10 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(rec, req)

		id := rec.Header().Get(chimiddleware.RequestIDHeader)
		if ids[id] {
			t.Fatalf("duplicate request ID generated on iteration %d: %s", i, id)
		}
		ids[id] = true
	}
}
