package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"workwise-backend/internal/shared/auth"
	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/telemetry"
)

// Service implements signup, login and account settings over a Repo.
type Service struct {
	Repo Repo
	IDs  ids.Generator
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Signup creates an account in role's collection. Extra profile fields are
// stored as given.
func (s *Service) Signup(ctx context.Context, role Role, email, password string, profile map[string]any) (Account, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Account{}, err
	}
	if password == "" {
		return Account{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	now := s.now().UTC()
	a := Account{
		ID:           s.newID(),
		Role:         role,
		Email:        email,
		PasswordHash: hash,
		Profile:      profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return Account{}, err
	}
	telemetry.Info("accounts.signup", map[string]any{"user_id": a.ID, "role": string(role)})
	return a, nil
}

// Login checks the password and issues a bearer token.
func (s *Service) Login(ctx context.Context, role Role, email, password string) (string, Account, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", Account{}, err
	}
	a, err := s.Repo.GetByEmail(ctx, role, email)
	if err != nil {
		return "", Account{}, err
	}
	if err := auth.CheckPassword(a.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", Account{}, ErrInvalidCredentials
		}
		return "", Account{}, err
	}
	token, err := IssueToken(a)
	if err != nil {
		return "", Account{}, err
	}
	return token, a, nil
}

// UpdateSettings applies a partial update to the caller's own account.
// "email" and "password" change credentials; any other key is merged into
// the profile. "id" and "role" cannot be changed.
func (s *Service) UpdateSettings(ctx context.Context, role Role, id string, patch map[string]any) (Account, error) {
	a, err := s.Repo.GetByID(ctx, role, id)
	if err != nil {
		return Account{}, err
	}
	for key, value := range patch {
		switch key {
		case "id", "role":
		case "email":
			raw, _ := value.(string)
			email, err := normalizeEmail(raw)
			if err != nil {
				return Account{}, err
			}
			a.Email = email
		case "password":
			raw, _ := value.(string)
			if raw == "" {
				return Account{}, fmt.Errorf("%w: password must be a non-empty string", ErrInvalidInput)
			}
			hash, err := auth.HashPassword(raw)
			if err != nil {
				return Account{}, err
			}
			a.PasswordHash = hash
		default:
			if a.Profile == nil {
				a.Profile = make(map[string]any)
			}
			a.Profile[key] = value
		}
	}
	a.UpdatedAt = s.now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Account{}, err
	}
	telemetry.Info("accounts.updated", map[string]any{"user_id": a.ID, "role": string(role)})
	return a, nil
}

// UpsertCandidate returns the candidate account for email, creating one
// without a password when none exists. Used by Google sign-in.
func (s *Service) UpsertCandidate(ctx context.Context, email string, profile map[string]any) (Account, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Account{}, err
	}
	a, err := s.Repo.GetByEmail(ctx, RoleCandidate, email)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	now := s.now().UTC()
	a = Account{ID: s.newID(), Role: RoleCandidate, Email: email, Profile: profile, CreatedAt: now, UpdatedAt: now}
	if err := s.Repo.Create(ctx, a); err != nil {
		if errors.Is(err, ErrExists) {
			return s.Repo.GetByEmail(ctx, RoleCandidate, email)
		}
		return Account{}, err
	}
	return a, nil
}

// IssueToken signs a bearer token for a.
func IssueToken(a Account) (string, error) {
	return auth.SignJWT(auth.Claims{ID: a.ID, Email: a.Email, Role: string(a.Role)})
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return email, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.IDs != nil {
		return s.IDs.NewID()
	}
	return uuid.NewString()
}
