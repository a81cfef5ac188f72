package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MessageResponse is the error payload; the client displays Message verbatim.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the payload for mutations that return no resource.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func decodeAndValidate(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return errors.New("missing or invalid fields")
	}
	return nil
}

func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// parseOwnerQuery reads the optional userId query parameter that scopes
// schedule mutations to the owning user. Zero means unscoped.
func parseOwnerQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("userId"))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid userId")
	}
	return id, nil
}
