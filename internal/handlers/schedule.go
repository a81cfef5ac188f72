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

// ScheduleHandler provides schedule CRUD and monitoring endpoints.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	logger          *zap.SugaredLogger
}

func NewScheduleHandler(scheduleService *services.ScheduleService, logger *zap.SugaredLogger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, logger: logger}
}

// ScheduleRouter registers schedule routes on the given router.
func ScheduleRouter(r chi.Router, scheduleService *services.ScheduleService, logger *zap.SugaredLogger) {
	handler := NewScheduleHandler(scheduleService, logger)

	r.Post("/add", handler.Add)
	r.Get("/date/{userID}/{date}", handler.ForDate)
	r.Get("/today/{userID}", handler.Today)
	r.Get("/all/{userID}", handler.All)
	r.Get("/athlete/{athleteID}/today", handler.AthleteToday)
	r.Put("/complete/{scheduleID}", handler.Complete)
	r.Delete("/delete/{scheduleID}", handler.Delete)
}

type AddScheduleRequest struct {
	UserID              int    `json:"userId" validate:"required,min=1"`
	ScheduleDate        string `json:"scheduleDate" validate:"required"`
	StartTime           string `json:"startTime" validate:"required"`
	EndTime             string `json:"endTime" validate:"required"`
	ActivityDescription string `json:"activityDescription" validate:"required"`
}

type ScheduleListResponse struct {
	Schedules []types.ScheduleEntry `json:"schedules"`
}

// Add inserts one activity block. Every field is parameterized on the
// way to the database, free text included.
func (h *ScheduleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddScheduleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.scheduleService.Add(r.Context(), req.UserID, req.ScheduleDate, req.StartTime, req.EndTime, req.ActivityDescription)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDay) || errors.Is(err, services.ErrInvalidClock) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("schedule add failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Schedule added successfully"})
}

// ForDate lists a user's entries for one calendar day.
func (h *ScheduleHandler) ForDate(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.scheduleService.ForDate(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDay) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("schedule fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, ScheduleListResponse{Schedules: entries})
}

// Today lists the user's entries for the current UTC day.
func (h *ScheduleHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.scheduleService.Today(r.Context(), userID)
	if err != nil {
		h.logger.Errorw("schedule fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, ScheduleListResponse{Schedules: entries})
}

// All lists the user's entire history.
func (h *ScheduleHandler) All(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.scheduleService.All(r.Context(), userID)
	if err != nil {
		h.logger.Errorw("schedule fetch failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, ScheduleListResponse{Schedules: entries})
}

// AthleteToday is the partner's read-only monitoring view. It responds
// with a bare array; the mobile client consumes it that way.
func (h *ScheduleHandler) AthleteToday(w http.ResponseWriter, r *http.Request) {
	athleteID, err := parseIDParam(r, "athleteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.scheduleService.AthleteToday(r.Context(), athleteID)
	if err != nil {
		h.logger.Errorw("athlete schedule fetch failed", "athlete_id", athleteID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Complete marks an entry done and stamps the completion time. The
// optional userId query parameter scopes the mutation to that owner.
func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseIDParam(r, "scheduleID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ownerID, err := parseOwnerQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.scheduleService.Complete(r.Context(), entryID, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Schedule not found")
			return
		}
		h.logger.Errorw("schedule complete failed", "schedule_id", entryID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Schedule marked as completed"})
}

// Delete removes an entry. Scoping mirrors Complete.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseIDParam(r, "scheduleID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ownerID, err := parseOwnerQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.scheduleService.Delete(r.Context(), entryID, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Schedule not found")
			return
		}
		h.logger.Errorw("schedule delete failed", "schedule_id", entryID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Schedule deleted successfully"})
}
