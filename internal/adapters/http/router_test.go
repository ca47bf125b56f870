package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/taskboard-api/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
	"github.com/jsamuelsen11/taskboard-api/mocks"
)

type routerDeps struct {
	tasks        *mocks.MockTaskService
	auth         *mocks.MockAuthService
	testimonials *mocks.MockTestimonialService
	registry     *mocks.MockHealthRegistry
}

func newHandlers(t *testing.T) (adapthttp.Handlers, routerDeps) {
	t.Helper()
	deps := routerDeps{
		tasks:        mocks.NewMockTaskService(t),
		auth:         mocks.NewMockAuthService(t),
		testimonials: mocks.NewMockTestimonialService(t),
		registry:     mocks.NewMockHealthRegistry(t),
	}
	h := adapthttp.Handlers{
		Tasks:        handlers.NewTaskHandler(deps.tasks),
		Auth:         handlers.NewAuthHandler(deps.auth),
		Testimonials: handlers.NewTestimonialHandler(deps.testimonials, deps.auth),
		Health:       handlers.NewHealthHandler(deps.registry),
	}
	return h, deps
}

func newTestRouter(t *testing.T) (http.Handler, routerDeps) {
	t.Helper()
	h, deps := newHandlers(t)
	return adapthttp.NewRouter(h, nil), deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks/warnings"},
		{http.MethodGet, "/api/tasks/recommendations"},
		{http.MethodPost, "/api/signup"},
		{http.MethodPost, "/api/login"},
		{http.MethodGet, "/api/testimonials"},
		{http.MethodPost, "/api/testimonials"},
		{http.MethodPatch, "/api/testimonials/{id}/approve"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, deps := newHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, nil, testMW)

	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_AuthLimitScopedToCredentialRoutes(t *testing.T) {
	t.Parallel()

	h, deps := newHandlers(t)

	var limited []string
	limit := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limited = append(limited, r.URL.Path)
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	router := adapthttp.NewRouter(h, limit)

	deps.tasks.EXPECT().ListTasks(mock.Anything).Return([]task.Task{}, nil)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodGet, "/api/tasks", nil),
	} {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	if len(limited) != 2 {
		t.Fatalf("limited paths = %v, want signup and login only", limited)
	}
	if limited[0] != "/api/signup" || limited[1] != "/api/login" {
		t.Errorf("limited paths = %v, want [/api/signup /api/login]", limited)
	}
}

func TestRouter_IntegrationListTasks(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.tasks.EXPECT().ListTasks(mock.Anything).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestRouter_IntegrationApproveParsesID(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.auth.EXPECT().Authenticate(mock.Anything, "tok").Return(&ports.Claims{Subject: "admin"}, nil)
	deps.testimonials.EXPECT().Approve(mock.Anything, int64(7)).Return(&testimonial.Testimonial{
		ID: 7, Name: "Ada", Message: "Great", Approved: true,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/testimonials/7/approve", nil)
	req.Header.Set("Authorization", "Bearer tok")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturnsProblem(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tasks", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
