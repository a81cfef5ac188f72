package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/athletelink/apiserver/internal/services"
	"github.com/athletelink/apiserver/internal/store"
	"github.com/athletelink/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter wires the real services over in-memory repositories,
// mirroring the wiring in internal/server.
func newTestRouter() *chi.Mux {
	users := &memUserRepo{users: map[int]types.User{}, nextID: 1}
	moods := &memMoodRepo{logs: map[int]types.MoodLog{}, nextID: 1}
	schedules := &memScheduleRepo{entries: map[int]types.ScheduleEntry{}, nextID: 1}

	logger := zap.NewNop().Sugar()
	authService := services.NewAuthService(users)
	moodService := services.NewMoodService(moods, users)
	scheduleService := services.NewScheduleService(schedules)

	router := chi.NewRouter()
	router.Route("/api/auth", func(r chi.Router) { AuthRouter(r, authService, logger) })
	router.Route("/api/mood", func(r chi.Router) { MoodRouter(r, moodService, logger) })
	router.Route("/api/schedule", func(r chi.Router) { ScheduleRouter(r, scheduleService, logger) })
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type memUserRepo struct {
	users  map[int]types.User
	nextID int
}

func (m *memUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) GetAthleteByPairingCode(_ context.Context, code string) (types.User, error) {
	for _, user := range m.users {
		if user.Role == types.RoleAthlete && user.PairingCode == code {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
		if user.PairingCode != "" && existing.PairingCode == user.PairingCode {
			return types.User{}, store.ErrDuplicatePairingCode
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return user, nil
}

func (m *memUserRepo) SetAthleteRef(_ context.Context, partnerID, athleteID int) error {
	partner, ok := m.users[partnerID]
	if !ok {
		return store.ErrNotFound
	}
	partner.AthleteID = athleteID
	m.users[partnerID] = partner
	return nil
}

type memMoodRepo struct {
	logs   map[int]types.MoodLog
	nextID int
}

func (m *memMoodRepo) Upsert(_ context.Context, userID int, day, emoji, text string) (types.MoodLog, error) {
	for id, log := range m.logs {
		if log.UserID == userID && log.LogDate == day {
			log.MoodEmoji = emoji
			log.MoodText = text
			log.CreatedAt = time.Now()
			m.logs[id] = log
			return log, nil
		}
	}
	log := types.MoodLog{ID: m.nextID, UserID: userID, LogDate: day, MoodEmoji: emoji, MoodText: text, CreatedAt: time.Now()}
	m.nextID++
	m.logs[log.ID] = log
	return log, nil
}

func (m *memMoodRepo) GetByDay(_ context.Context, userID int, day string) (types.MoodLog, error) {
	for _, log := range m.logs {
		if log.UserID == userID && log.LogDate == day {
			return log, nil
		}
	}
	return types.MoodLog{}, store.ErrNotFound
}

func (m *memMoodRepo) ListRecent(_ context.Context, userID, limit int) ([]types.MoodLog, error) {
	logs := make([]types.MoodLog, 0)
	for _, log := range m.logs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].LogDate > logs[j].LogDate })
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

type memScheduleRepo struct {
	entries map[int]types.ScheduleEntry
	nextID  int
}

func (m *memScheduleRepo) Create(_ context.Context, entry types.ScheduleEntry) (types.ScheduleEntry, error) {
	entry.ID = m.nextID
	m.nextID++
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *memScheduleRepo) ListByDay(_ context.Context, userID int, day string) ([]types.ScheduleEntry, error) {
	entries := make([]types.ScheduleEntry, 0)
	for _, entry := range m.entries {
		if entry.UserID == userID && entry.ScheduleDate == day {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].StartTime < entries[j].StartTime })
	return entries, nil
}

func (m *memScheduleRepo) ListAll(_ context.Context, userID int) ([]types.ScheduleEntry, error) {
	entries := make([]types.ScheduleEntry, 0)
	for _, entry := range m.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ScheduleDate != entries[j].ScheduleDate {
			return entries[i].ScheduleDate > entries[j].ScheduleDate
		}
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries, nil
}

func (m *memScheduleRepo) Complete(_ context.Context, id, ownerID int) error {
	entry, ok := m.entries[id]
	if !ok || (ownerID > 0 && entry.UserID != ownerID) {
		return store.ErrNotFound
	}
	now := time.Now()
	entry.IsCompleted = true
	entry.CompletedAt = &now
	m.entries[id] = entry
	return nil
}

func (m *memScheduleRepo) Delete(_ context.Context, id, ownerID int) error {
	entry, ok := m.entries[id]
	if !ok || (ownerID > 0 && entry.UserID != ownerID) {
		return store.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}
