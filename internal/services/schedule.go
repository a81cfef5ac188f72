package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/athletelink/apiserver/internal/dates"
	"github.com/athletelink/apiserver/types"
)

// Validation failures surfaced by the schedule use-cases.
var (
	ErrInvalidDay   = errors.New("invalid schedule date")
	ErrInvalidClock = errors.New("invalid time of day")
)

// ScheduleRepository defines persistence operations for schedule entries.
type ScheduleRepository interface {
	Create(ctx context.Context, entry types.ScheduleEntry) (types.ScheduleEntry, error)
	ListByDay(ctx context.Context, userID int, day string) ([]types.ScheduleEntry, error)
	ListAll(ctx context.Context, userID int) ([]types.ScheduleEntry, error)
	Complete(ctx context.Context, id, ownerID int) error
	Delete(ctx context.Context, id, ownerID int) error
}

// ScheduleService encapsulates schedule use-cases.
type ScheduleService struct {
	repo ScheduleRepository
}

func NewScheduleService(repo ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// Add inserts one activity block. Times accept 15:04 or 15:04:05 and
// are stored in canonical form. Start-before-end ordering is a client
// contract and is intentionally not enforced here.
func (s *ScheduleService) Add(ctx context.Context, userID int, day, start, end, description string) (types.ScheduleEntry, error) {
	if !dates.ValidDay(day) {
		return types.ScheduleEntry{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	start, err := dates.NormalizeClock(start)
	if err != nil {
		return types.ScheduleEntry{}, fmt.Errorf("%w: start", ErrInvalidClock)
	}
	end, err = dates.NormalizeClock(end)
	if err != nil {
		return types.ScheduleEntry{}, fmt.Errorf("%w: end", ErrInvalidClock)
	}

	return s.repo.Create(ctx, types.ScheduleEntry{
		UserID:              userID,
		ScheduleDate:        day,
		StartTime:           start,
		EndTime:             end,
		ActivityDescription: description,
	})
}

// ForDate returns the user's entries for one calendar day.
func (s *ScheduleService) ForDate(ctx context.Context, userID int, day string) ([]types.ScheduleEntry, error) {
	if !dates.ValidDay(day) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return s.repo.ListByDay(ctx, userID, day)
}

// Today returns the user's entries for the current UTC day.
func (s *ScheduleService) Today(ctx context.Context, userID int) ([]types.ScheduleEntry, error) {
	return s.repo.ListByDay(ctx, userID, dates.Today())
}

// All returns the user's entire history.
func (s *ScheduleService) All(ctx context.Context, userID int) ([]types.ScheduleEntry, error) {
	return s.repo.ListAll(ctx, userID)
}

// AthleteToday is the partner-facing read-only view of an athlete's
// schedule for today.
func (s *ScheduleService) AthleteToday(ctx context.Context, athleteID int) ([]types.ScheduleEntry, error) {
	return s.repo.ListByDay(ctx, athleteID, dates.Today())
}

// Complete marks an entry done. A positive requesterID scopes the
// mutation to that owner's entries.
func (s *ScheduleService) Complete(ctx context.Context, entryID, requesterID int) error {
	return s.repo.Complete(ctx, entryID, requesterID)
}

// Delete removes an entry. Scoping mirrors Complete.
func (s *ScheduleService) Delete(ctx context.Context, entryID, requesterID int) error {
	return s.repo.Delete(ctx, entryID, requesterID)
}
