package types

import "time"

// MoodLog is one per-user-per-day record of a self-reported emotional
// state and optional note. At most one exists per (user, calendar day),
// enforced by a unique constraint; logging again the same day replaces
// the stored values in place.
type MoodLog struct {
	// ID is the unique identifier of the log row.
	ID int `json:"id" db:"id"`

	// UserID is the owning user.
	UserID int `json:"user_id" db:"user_id"`

	// LogDate is the calendar day of the entry, formatted 2006-01-02.
	// Days are reckoned in UTC everywhere.
	LogDate string `json:"log_date" db:"log_date"`

	// MoodEmoji is the short emoji/code string chosen by the user.
	MoodEmoji string `json:"mood_emoji" db:"mood_emoji"`

	// MoodText is the optional free-text note.
	MoodText string `json:"mood_text" db:"mood_text"`

	// CreatedAt is when the entry was first written or last replaced.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
