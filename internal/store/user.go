package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/athletelink/apiserver/types"
)

const userColumns = `id, name, email, role, pairing_code, athlete_id, password_hash, created_at, updated_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetAthleteByPairingCode performs the case-sensitive exact lookup used
// by pairing redemption. Only athlete rows match.
func (r *UserRepository) GetAthleteByPairingCode(ctx context.Context, code string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE pairing_code = $1 AND role = $2`
	return scanUser(r.db.QueryRowContext(ctx, query, code, types.RoleAthlete))
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	var pairingCode sql.NullString
	if user.PairingCode != "" {
		pairingCode = sql.NullString{String: user.PairingCode, Valid: true}
	}

	const query = `
		INSERT INTO users (name, email, role, pairing_code, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Role,
		pairingCode,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if uniqueViolation(err, "users_email_key") {
			return types.User{}, ErrDuplicateEmail
		}
		if uniqueViolation(err, "users_pairing_code_key") {
			return types.User{}, ErrDuplicatePairingCode
		}
		return types.User{}, err
	}
	return user, nil
}

// SetAthleteRef points a partner at an athlete. The overwrite is
// unconditional; redeeming a second code replaces the reference.
func (r *UserRepository) SetAthleteRef(ctx context.Context, partnerID, athleteID int) error {
	const query = `
		UPDATE users
		SET athlete_id = $2,
			updated_at = $3
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, partnerID, athleteID, time.Now())
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (types.User, error) {
	var (
		user        types.User
		pairingCode sql.NullString
		athleteID   sql.NullInt64
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&pairingCode,
		&athleteID,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	user.PairingCode = pairingCode.String
	user.AthleteID = int(athleteID.Int64)
	return user, nil
}
