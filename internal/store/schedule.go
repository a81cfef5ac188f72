package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/athletelink/apiserver/internal/dates"
	"github.com/athletelink/apiserver/types"
)

const scheduleColumns = `id, user_id, schedule_date, start_time, end_time, activity_description, is_completed, completed_at, created_at`

// ScheduleRepository handles persistence for schedule entries.
type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, entry types.ScheduleEntry) (types.ScheduleEntry, error) {
	entry.CreatedAt = time.Now()

	const query = `
		INSERT INTO daily_schedules (user_id, schedule_date, start_time, end_time, activity_description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.ScheduleDate,
		entry.StartTime,
		entry.EndTime,
		entry.ActivityDescription,
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return types.ScheduleEntry{}, err
	}
	return entry, nil
}

// ListByDay returns the user's entries for one calendar day, earliest
// start first.
func (r *ScheduleRepository) ListByDay(ctx context.Context, userID int, day string) ([]types.ScheduleEntry, error) {
	const query = `
		SELECT ` + scheduleColumns + `
		FROM daily_schedules
		WHERE user_id = $1 AND schedule_date = $2
		ORDER BY start_time ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, day)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// ListAll returns the user's entire history, newest day first with
// entries inside a day ordered by start time.
func (r *ScheduleRepository) ListAll(ctx context.Context, userID int) ([]types.ScheduleEntry, error) {
	const query = `
		SELECT ` + scheduleColumns + `
		FROM daily_schedules
		WHERE user_id = $1
		ORDER BY schedule_date DESC, start_time ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// Complete marks the entry done and stamps the completion time. When
// ownerID is positive the update is scoped to that owner's rows.
func (r *ScheduleRepository) Complete(ctx context.Context, id, ownerID int) error {
	const query = `
		UPDATE daily_schedules
		SET is_completed = TRUE,
			completed_at = $2
		WHERE id = $1`
	return r.execScoped(ctx, query, id, ownerID, time.Now())
}

// Delete removes the entry. Scoping mirrors Complete.
func (r *ScheduleRepository) Delete(ctx context.Context, id, ownerID int) error {
	const query = `
		DELETE FROM daily_schedules
		WHERE id = $1`
	return r.execScoped(ctx, query, id, ownerID)
}

func (r *ScheduleRepository) execScoped(ctx context.Context, query string, id, ownerID int, extra ...any) error {
	args := append([]any{id}, extra...)
	if ownerID > 0 {
		query += ` AND user_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, ownerID)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collectEntries(rows *sql.Rows) ([]types.ScheduleEntry, error) {
	defer rows.Close()

	entries := make([]types.ScheduleEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func scanEntry(row rowScanner) (types.ScheduleEntry, error) {
	var (
		entry        types.ScheduleEntry
		scheduleDate time.Time
		startTime    time.Time
		endTime      time.Time
		completedAt  sql.NullTime
	)
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&scheduleDate,
		&startTime,
		&endTime,
		&entry.ActivityDescription,
		&entry.IsCompleted,
		&completedAt,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ScheduleEntry{}, ErrNotFound
		}
		return types.ScheduleEntry{}, err
	}

	// TIME columns come back anchored to an epoch date; extract the
	// clock portion in UTC so the displayed times never shift.
	entry.ScheduleDate = dates.Day(scheduleDate)
	entry.StartTime = dates.Clock(startTime)
	entry.EndTime = dates.Clock(endTime)
	if completedAt.Valid {
		t := completedAt.Time
		entry.CompletedAt = &t
	}
	return entry, nil
}
