package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/athletelink/apiserver/internal/dates"
	"github.com/athletelink/apiserver/types"
)

// MoodRepository handles persistence for mood logs.
type MoodRepository struct {
	db *sql.DB
}

func NewMoodRepository(db *sql.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Upsert writes the mood for (userID, day) in one atomic statement.
// A same-day conflict replaces emoji, text and timestamp in place, so
// concurrent writers cannot produce duplicate rows or lost updates.
func (r *MoodRepository) Upsert(ctx context.Context, userID int, day, emoji, text string) (types.MoodLog, error) {
	const query = `
		INSERT INTO mood_logs (user_id, log_date, mood_emoji, mood_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET mood_emoji = EXCLUDED.mood_emoji,
			mood_text = EXCLUDED.mood_text,
			created_at = EXCLUDED.created_at
		RETURNING id, user_id, log_date, mood_emoji, mood_text, created_at`
	return scanMood(r.db.QueryRowContext(ctx, query, userID, day, emoji, text, time.Now()))
}

func (r *MoodRepository) GetByDay(ctx context.Context, userID int, day string) (types.MoodLog, error) {
	const query = `
		SELECT id, user_id, log_date, mood_emoji, mood_text, created_at
		FROM mood_logs
		WHERE user_id = $1 AND log_date = $2`
	return scanMood(r.db.QueryRowContext(ctx, query, userID, day))
}

// ListRecent returns up to limit logs for the user, newest day first.
func (r *MoodRepository) ListRecent(ctx context.Context, userID, limit int) ([]types.MoodLog, error) {
	const query = `
		SELECT id, user_id, log_date, mood_emoji, mood_text, created_at
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY log_date DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]types.MoodLog, 0, limit)
	for rows.Next() {
		log, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func scanMood(row rowScanner) (types.MoodLog, error) {
	var (
		log     types.MoodLog
		logDate time.Time
	)
	err := row.Scan(
		&log.ID,
		&log.UserID,
		&logDate,
		&log.MoodEmoji,
		&log.MoodText,
		&log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.MoodLog{}, ErrNotFound
		}
		return types.MoodLog{}, err
	}
	log.LogDate = dates.Day(logDate)
	return log, nil
}
