package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedstack/federation-registry/pkg/middleware"
)

func tag(name string) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChainOrder(t *testing.T) {
	chain := middleware.New().Use(tag("outer")).Use(tag("inner"))

	handler := chain.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	order := rec.Header().Values("X-Order")
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("execution order = %v, want [outer inner]", order)
	}
}

func TestChainEmpty(t *testing.T) {
	handler := middleware.New().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
