package services

import (
	"context"
	"sort"
	"time"

	"github.com/athletelink/apiserver/internal/store"
	"github.com/athletelink/apiserver/types"
)

// In-memory repositories mirroring the store layer's contract,
// including its sentinel errors.

type fakeUserRepo struct {
	users  map[int]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]types.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetAthleteByPairingCode(_ context.Context, code string) (types.User, error) {
	for _, user := range f.users {
		if user.Role == types.RoleAthlete && user.PairingCode == code {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
		if user.PairingCode != "" && existing.PairingCode == user.PairingCode {
			return types.User{}, store.ErrDuplicatePairingCode
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) SetAthleteRef(_ context.Context, partnerID, athleteID int) error {
	partner, ok := f.users[partnerID]
	if !ok {
		return store.ErrNotFound
	}
	partner.AthleteID = athleteID
	f.users[partnerID] = partner
	return nil
}

type fakeMoodRepo struct {
	logs   map[int]types.MoodLog
	nextID int
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{logs: map[int]types.MoodLog{}, nextID: 1}
}

func (f *fakeMoodRepo) Upsert(_ context.Context, userID int, day, emoji, text string) (types.MoodLog, error) {
	for id, log := range f.logs {
		if log.UserID == userID && log.LogDate == day {
			log.MoodEmoji = emoji
			log.MoodText = text
			log.CreatedAt = time.Now()
			f.logs[id] = log
			return log, nil
		}
	}
	log := types.MoodLog{
		ID:        f.nextID,
		UserID:    userID,
		LogDate:   day,
		MoodEmoji: emoji,
		MoodText:  text,
		CreatedAt: time.Now(),
	}
	f.nextID++
	f.logs[log.ID] = log
	return log, nil
}

func (f *fakeMoodRepo) GetByDay(_ context.Context, userID int, day string) (types.MoodLog, error) {
	for _, log := range f.logs {
		if log.UserID == userID && log.LogDate == day {
			return log, nil
		}
	}
	return types.MoodLog{}, store.ErrNotFound
}

func (f *fakeMoodRepo) ListRecent(_ context.Context, userID, limit int) ([]types.MoodLog, error) {
	logs := make([]types.MoodLog, 0)
	for _, log := range f.logs {
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

type fakeScheduleRepo struct {
	entries map[int]types.ScheduleEntry
	nextID  int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: map[int]types.ScheduleEntry{}, nextID: 1}
}

func (f *fakeScheduleRepo) Create(_ context.Context, entry types.ScheduleEntry) (types.ScheduleEntry, error) {
	entry.ID = f.nextID
	f.nextID++
	entry.CreatedAt = time.Now()
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeScheduleRepo) ListByDay(_ context.Context, userID int, day string) ([]types.ScheduleEntry, error) {
	entries := make([]types.ScheduleEntry, 0)
	for _, entry := range f.entries {
		if entry.UserID == userID && entry.ScheduleDate == day {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].StartTime < entries[j].StartTime })
	return entries, nil
}

func (f *fakeScheduleRepo) ListAll(_ context.Context, userID int) ([]types.ScheduleEntry, error) {
	entries := make([]types.ScheduleEntry, 0)
	for _, entry := range f.entries {
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

func (f *fakeScheduleRepo) Complete(_ context.Context, id, ownerID int) error {
	entry, ok := f.entries[id]
	if !ok || (ownerID > 0 && entry.UserID != ownerID) {
		return store.ErrNotFound
	}
	now := time.Now()
	entry.IsCompleted = true
	entry.CompletedAt = &now
	f.entries[id] = entry
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id, ownerID int) error {
	entry, ok := f.entries[id]
	if !ok || (ownerID > 0 && entry.UserID != ownerID) {
		return store.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}
