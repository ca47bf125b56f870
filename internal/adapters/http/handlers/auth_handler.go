package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const msgUserCreated = "user created successfully"

// AuthHandler handles signup and login.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.Signup(r.Context(), req.ToCredentials()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MessageResponse{Message: msgUserCreated})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	tok, err := h.svc.Login(r.Context(), req.ToCredentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTokenResponse(tok))
}
