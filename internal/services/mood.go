package services

import (
	"context"
	"errors"

	"github.com/athletelink/apiserver/internal/dates"
	"github.com/athletelink/apiserver/internal/store"
	"github.com/athletelink/apiserver/types"
)

// ErrNotPaired is returned when a partner-facing view is requested for
// a partner that has not redeemed a pairing code yet.
var ErrNotPaired = errors.New("no athlete paired")

const partnerHistoryLimit = 7

// MoodRepository defines persistence operations for mood logs.
type MoodRepository interface {
	Upsert(ctx context.Context, userID int, day, emoji, text string) (types.MoodLog, error)
	GetByDay(ctx context.Context, userID int, day string) (types.MoodLog, error)
	ListRecent(ctx context.Context, userID, limit int) ([]types.MoodLog, error)
}

// MoodService encapsulates mood use-cases.
type MoodService struct {
	moods MoodRepository
	users UserRepository
}

func NewMoodService(moods MoodRepository, users UserRepository) *MoodService {
	return &MoodService{moods: moods, users: users}
}

// Log stores the user's mood for today, replacing any same-day entry.
func (s *MoodService) Log(ctx context.Context, userID int, emoji, text string) (types.MoodLog, error) {
	return s.moods.Upsert(ctx, userID, dates.Today(), emoji, text)
}

// Today returns the user's entry for the current day. A missing entry
// is reported through the bool, never as an error.
func (s *MoodService) Today(ctx context.Context, userID int) (types.MoodLog, bool, error) {
	log, err := s.moods.GetByDay(ctx, userID, dates.Today())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.MoodLog{}, false, nil
		}
		return types.MoodLog{}, false, err
	}
	return log, true, nil
}

// PartnerHistory resolves the partner's paired athlete through the
// stored reference and returns the athlete's most recent entries,
// newest day first.
func (s *MoodService) PartnerHistory(ctx context.Context, partnerID int) ([]types.MoodLog, types.AthleteSummary, error) {
	partner, err := s.users.GetByID(ctx, partnerID)
	if err != nil {
		return nil, types.AthleteSummary{}, err
	}
	if partner.AthleteID == 0 {
		return nil, types.AthleteSummary{}, ErrNotPaired
	}

	athlete, err := s.users.GetByID(ctx, partner.AthleteID)
	if err != nil {
		return nil, types.AthleteSummary{}, err
	}

	moods, err := s.moods.ListRecent(ctx, athlete.ID, partnerHistoryLimit)
	if err != nil {
		return nil, types.AthleteSummary{}, err
	}
	return moods, types.AthleteSummary{ID: athlete.ID, Name: athlete.Name}, nil
}
