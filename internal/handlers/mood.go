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

// MoodHandler provides mood logging and viewing endpoints.
type MoodHandler struct {
	moodService *services.MoodService
	logger      *zap.SugaredLogger
}

func NewMoodHandler(moodService *services.MoodService, logger *zap.SugaredLogger) *MoodHandler {
	return &MoodHandler{moodService: moodService, logger: logger}
}

// MoodRouter registers mood routes on the given router.
func MoodRouter(r chi.Router, moodService *services.MoodService, logger *zap.SugaredLogger) {
	handler := NewMoodHandler(moodService, logger)

	r.Post("/log", handler.Log)
	r.Get("/today/{userID}", handler.Today)
	r.Get("/partner/{partnerID}", handler.PartnerHistory)
}

type LogMoodRequest struct {
	UserID    int    `json:"userId" validate:"required,min=1"`
	MoodEmoji string `json:"moodEmoji" validate:"required"`
	MoodText  string `json:"moodText"`
}

type storedMood struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

type LogMoodResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Mood    storedMood `json:"mood"`
}

type TodayMoodResponse struct {
	HasMoodToday bool           `json:"hasMoodToday"`
	Mood         *types.MoodLog `json:"mood"`
}

type PartnerMoodResponse struct {
	Moods   []types.MoodLog      `json:"moods"`
	Athlete types.AthleteSummary `json:"athlete"`
}

// Log upserts the caller's mood for today.
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req LogMoodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mood, err := h.moodService.Log(r.Context(), req.UserID, req.MoodEmoji, req.MoodText)
	if err != nil {
		h.logger.Errorw("mood log failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, LogMoodResponse{
		Success: true,
		Message: "Mood logged successfully",
		Mood:    storedMood{Emoji: mood.MoodEmoji, Text: mood.MoodText},
	})
}

// Today returns the user's entry for the current day. The no-data case
// is a normal response, never an error.
func (h *MoodHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mood, ok, err := h.moodService.Today(r.Context(), userID)
	if err != nil {
		h.logger.Errorw("mood fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	resp := TodayMoodResponse{HasMoodToday: ok}
	if ok {
		resp.Mood = &mood
	}
	writeJSON(w, http.StatusOK, resp)
}

// PartnerHistory returns the paired athlete's recent moods for the
// partner dashboard.
func (h *MoodHandler) PartnerHistory(w http.ResponseWriter, r *http.Request) {
	partnerID, err := parseIDParam(r, "partnerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	moods, athlete, err := h.moodService.PartnerHistory(r.Context(), partnerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPaired):
			writeError(w, http.StatusNotFound, "No athlete paired")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Partner not found")
		default:
			h.logger.Errorw("partner mood fetch failed", "partner_id", partnerID, "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	if moods == nil {
		moods = []types.MoodLog{}
	}
	writeJSON(w, http.StatusOK, PartnerMoodResponse{Moods: moods, Athlete: athlete})
}
