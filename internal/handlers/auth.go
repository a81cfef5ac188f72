package handlers

import (
	"errors"
	"net/http"

	"github.com/athletelink/apiserver/internal/services"
	"github.com/athletelink/apiserver/internal/store"
	"github.com/athletelink/apiserver/types"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthHandler provides registration, login and pairing endpoints.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.SugaredLogger
}

func NewAuthHandler(authService *services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, authService *services.AuthService, logger *zap.SugaredLogger) {
	handler := NewAuthHandler(authService, logger)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.Post("/pair", handler.Pair)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=athlete partner"`
}

type RegisterResponse struct {
	Message     string `json:"message"`
	PairingCode string `json:"pairingCode,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string     `json:"message"`
	User    types.User `json:"user"`
}

type PairRequest struct {
	PartnerID   int    `json:"partnerId" validate:"required,min=1"`
	PairingCode string `json:"pairingCode" validate:"required"`
}

type PairResponse struct {
	Message string               `json:"message"`
	Athlete types.AthleteSummary `json:"athlete"`
}

// Register creates an account. Athletes get their pairing code back in
// the response; it is never shown again.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "Email already exists")
		case errors.Is(err, services.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "Invalid role")
		default:
			h.logger.Errorw("register failed", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message:     "User registered",
		PairingCode: user.PairingCode,
	})
}

// Login verifies credentials and returns the public profile.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Errorw("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Message: "Login successful", User: user})
}

// Pair redeems an athlete's pairing code on behalf of a partner.
func (h *AuthHandler) Pair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	athlete, err := h.authService.RedeemPairing(r.Context(), req.PartnerID, req.PairingCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPairingCode):
			writeError(w, http.StatusBadRequest, "Invalid pairing code")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Partner not found")
		default:
			h.logger.Errorw("pairing failed", "partner_id", req.PartnerID, "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, PairResponse{Message: "Pairing successful", Athlete: athlete})
}
