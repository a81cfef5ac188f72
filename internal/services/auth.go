package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/athletelink/apiserver/internal/store"
	"github.com/athletelink/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// Domain failures surfaced by the auth use-cases. Handlers map these to
// client-facing statuses; anything else is a storage failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPairingCode = errors.New("invalid pairing code")
	ErrInvalidRole        = errors.New("role must be athlete or partner")
)

const (
	pairingCodeLength = 6
	// math/rand on purpose: codes are share-by-hand tokens, not secrets.
	pairingCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pairingCodeRetries = 5
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	GetAthleteByPairingCode(ctx context.Context, code string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	SetAthleteRef(ctx context.Context, partnerID, athleteID int) error
}

// AuthService encapsulates registration, login and pairing use-cases.
type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates an account. Athletes receive a pairing code at this
// point and never again; partners start unpaired. Email uniqueness is
// enforced by the store (store.ErrDuplicateEmail).
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (types.User, error) {
	if role != types.RoleAthlete && role != types.RolePartner {
		return types.User{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := types.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}

	if role != types.RoleAthlete {
		return s.repo.Create(ctx, user)
	}

	for attempt := 0; ; attempt++ {
		user.PairingCode = NewPairingCode()
		created, err := s.repo.Create(ctx, user)
		if errors.Is(err, store.ErrDuplicatePairingCode) && attempt < pairingCodeRetries {
			continue
		}
		return created, err
	}
}

// Login checks credentials and returns the stored profile. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (types.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// RedeemPairing links the partner to the athlete owning the code. The
// reference is overwritten unconditionally, so redeeming the same code
// twice is a no-op and redeeming a different one re-points the partner.
func (s *AuthService) RedeemPairing(ctx context.Context, partnerID int, code string) (types.AthleteSummary, error) {
	athlete, err := s.repo.GetAthleteByPairingCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.AthleteSummary{}, ErrInvalidPairingCode
		}
		return types.AthleteSummary{}, err
	}

	if err := s.repo.SetAthleteRef(ctx, partnerID, athlete.ID); err != nil {
		return types.AthleteSummary{}, err
	}

	return types.AthleteSummary{ID: athlete.ID, Name: athlete.Name}, nil
}

// NewPairingCode draws a fixed-length uppercase alphanumeric token.
func NewPairingCode() string {
	code := make([]byte, pairingCodeLength)
	for i := range code {
		code[i] = pairingCodeCharset[rand.Intn(len(pairingCodeCharset))]
	}
	return string(code)
}
