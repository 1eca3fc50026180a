package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shoplite/api/internal/service"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService *service.AuthService
	log         *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode register request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrMissingCredentials:
			WriteError(w, http.StatusBadRequest, "Email and password are required", h.log)
		default:
			h.log.Error("failed to register user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	h.log.Info("user registered", "user_id", user.ID)
	WriteJSON(w, http.StatusCreated, user, h.log)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode login request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrMissingCredentials, service.ErrInvalidCredentials:
			// One generic message for unknown email and wrong password alike
			WriteError(w, http.StatusUnauthorized, "Invalid credentials", h.log)
		default:
			h.log.Error("failed to log in user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"token": token}, h.log)
}
