package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	router := NewRouter(RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"not_found"`) {
		t.Fatalf("expected JSON error body, got %q", rec.Body.String())
	}
}

func TestWrongMethod(t *testing.T) {
	t.Parallel()

	router := NewRouter(RouterConfig{})

	req := httptest.NewRequest(http.MethodDelete, "/signup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"method_not_allowed"`) {
		t.Fatalf("expected JSON error body, got %q", rec.Body.String())
	}
}
