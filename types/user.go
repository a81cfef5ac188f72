package types

import "time"

// Roles an account can hold. An athlete owns mood logs and a schedule;
// a partner pairs with exactly one athlete and reads both.
const (
	RoleAthlete = "athlete"
	RolePartner = "partner"
)

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display name.
	Name string `json:"name" db:"name"`

	// Email is the user's unique email address.
	Email string `json:"email" db:"email"`

	// Role is either "athlete" or "partner".
	Role string `json:"role" db:"role"`

	// PairingCode is the short token an athlete hands to their partner.
	// Generated once at registration for athletes, immutable afterwards.
	// Always empty for partners.
	PairingCode string `json:"pairing_code,omitempty" db:"pairing_code"`

	// AthleteID is the id of the athlete a partner is paired with.
	// Zero until the partner redeems a pairing code; overwritten by
	// any later redemption. Always zero for athletes.
	AthleteID int `json:"athlete_id,omitempty" db:"athlete_id"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AthleteSummary is the public subset of an athlete's profile returned
// by pairing redemption and partner-facing views.
type AthleteSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
