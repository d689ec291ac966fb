package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budde25/partydj/internal/shared"
)

type stubHandler struct {
	routes []string
	calls  int
}

func (s *stubHandler) Routes() []string { return s.routes }

func (s *stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls++
	w.WriteHeader(http.StatusOK)
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handler Registers All Routes", func(t *testing.T) {
		router := NewBasicRouter()
		stub := &stubHandler{routes: []string{"/a", "/b"}}
		router.Handler(stub)

		for _, path := range stub.routes {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200 for %s, got %d", path, rec.Code)
			}
		}
		if stub.calls != 2 {
			t.Errorf("expected 2 handler calls, got %d", stub.calls)
		}
	})

	t.Run("Handle Enforces Method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/only-get", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", rec.Code)
		}
	})

	t.Run("Middleware Order", func(t *testing.T) {
		router := NewBasicRouter()

		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}
		router.Use(mw("first"), mw("second"))
		router.Handler(&stubHandler{routes: []string{"/x"}})

		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("middleware ran in wrong order: %v", order)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates ID", func(t *testing.T) {
		var seen string
		handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(RequestIDKey).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen == "" {
			t.Error("expected a request ID on the context")
		}
		if rec.Header().Get(requestIDHeader) != seen {
			t.Error("request ID should be echoed in the response header")
		}
	})

	t.Run("Honors Incoming ID", func(t *testing.T) {
		handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "client-id-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get(requestIDHeader) != "client-id-1" {
			t.Errorf("expected incoming ID to be kept, got %s", rec.Header().Get(requestIDHeader))
		}
	})
}

func TestLogging(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("logging middleware should pass the status through, got %d", rec.Code)
	}
}
