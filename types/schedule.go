package types

import "time"

// ScheduleEntry is one planned activity block owned by a user: a date,
// a time range, a description and a one-way completion state.
type ScheduleEntry struct {
	// ID is the unique identifier of the entry.
	ID int `json:"id" db:"id"`

	// UserID is the owning user.
	UserID int `json:"user_id" db:"user_id"`

	// ScheduleDate is the calendar day of the activity, formatted 2006-01-02.
	ScheduleDate string `json:"schedule_date" db:"schedule_date"`

	// StartTime is the wall-clock start of the block, formatted 15:04:05.
	// Clock values are extracted in UTC so they never shift with the
	// server zone.
	StartTime string `json:"start_time" db:"start_time"`

	// EndTime is the wall-clock end of the block, formatted 15:04:05.
	// The client is responsible for keeping StartTime before EndTime;
	// the service does not enforce ordering.
	EndTime string `json:"end_time" db:"end_time"`

	// ActivityDescription is the free-text description of the activity.
	ActivityDescription string `json:"activity_description" db:"activity_description"`

	// IsCompleted reports whether the block was marked done. The
	// transition is one-way; there is no un-complete operation.
	IsCompleted bool `json:"is_completed" db:"is_completed"`

	// CompletedAt is stamped when IsCompleted transitions to true.
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`

	// CreatedAt is the timestamp when the entry was added.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
