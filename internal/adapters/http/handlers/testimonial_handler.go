package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// TestimonialHandler handles the testimonial moderation endpoints. Approving
// and viewing the pending queue require a bearer token.
type TestimonialHandler struct {
	svc  ports.TestimonialService
	auth ports.AuthService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(svc ports.TestimonialService, auth ports.AuthService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc, auth: auth}
}

// Submit handles POST /api/testimonials.
func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestimonialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Submit(r.Context(), req.ToTestimonial())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTestimonialResponse(created))
}

// Approve handles PATCH /api/testimonials/{id}/approve.
func (h *TestimonialHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := authenticate(w, r, h.auth)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("testimonial approved",
		slog.Int64("id", id),
		slog.String("by", claims.Subject),
	)
	writeJSON(w, r, http.StatusOK, dto.ToTestimonialResponse(updated))
}

// List handles GET /api/testimonials. With ?admin=true and a valid bearer
// token the pending queue is included; any other admin value is ignored.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	admin := r.URL.Query().Get("admin") == "true"
	if admin {
		if _, ok := authenticate(w, r, h.auth); !ok {
			return
		}
	}

	items, err := h.svc.List(r.Context(), admin)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTestimonialListResponse(items))
}
