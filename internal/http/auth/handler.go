package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/auth"
	"github.com/paynote/paynote/internal/http/render"
	"github.com/paynote/paynote/internal/http/session"
)

type Handler struct {
	svc        *auth.Service
	sessionTTL time.Duration
}

func NewHandler(svc *auth.Service, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, sessionTTL: sessionTTL}
}

// Routes registers the unauthenticated endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

// MeRoutes registers the endpoints that require a session.
func (h *Handler) MeRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			render.Error(w, http.StatusConflict, err.Error())
			return
		}

		render.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	render.JSON(w, http.StatusCreated, map[string]any{
		"message": "Account created successfully",
		"user":    toUserResponse(u),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			render.Error(w, http.StatusUnauthorized, err.Error())
			return
		}

		slog.Error("login failed", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	session.SetCookie(w, token, int(h.sessionTTL.Seconds()))

	render.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)

	render.JSON(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), session.Owner(r.Context()))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			render.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		slog.Error("loading current user failed", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	render.JSON(w, http.StatusOK, toUserResponse(u))
}
