// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Tasks        *handlers.TaskHandler
	Auth         *handlers.AuthHandler
	Testimonials *handlers.TestimonialHandler
	Health       *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. authLimit, when non-nil,
// wraps only the signup and login routes.
func NewRouter(h Handlers, authLimit func(http.Handler) http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})

	r.Get("/", h.Health.Root)

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Tasks.
		r.Get("/tasks", h.Tasks.ListTasks)
		r.Post("/tasks", h.Tasks.CreateTask)
		r.Get("/tasks/warnings", h.Tasks.ListWarnings)
		r.Get("/tasks/recommendations", h.Tasks.ListRecommendations)

		// Credentials.
		r.Group(func(r chi.Router) {
			if authLimit != nil {
				r.Use(authLimit)
			}
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
		})

		// Testimonials.
		r.Get("/testimonials", h.Testimonials.List)
		r.Post("/testimonials", h.Testimonials.Submit)
		r.Patch("/testimonials/{id}/approve", h.Testimonials.Approve)
	})

	return r
}
