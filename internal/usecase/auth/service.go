package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"synerh/internal/domain/profile"
	"synerh/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrMalformedEmail         = errors.New("malformed email")
	ErrMissingPassword        = errors.New("missing password")
	ErrWeakPassword           = errors.New("weak password")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service verifies credentials and reconciles each sign-in with a durable
// profile record (read-or-create). Record-store failures during
// reconciliation are secondary: logged, never surfaced, the session
// proceeds with the synthesized record.
type Service struct {
	users    user.Repository
	profiles profile.Repository
	logger   *log.Logger
}

func NewService(users user.Repository, profiles profile.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{users: users, profiles: profiles, logger: logger}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (profile.Profile, error) {
	email := normalizeEmail(in.Email)
	if !isValidEmail(email) {
		return profile.Profile{}, ErrMalformedEmail
	}
	if strings.TrimSpace(in.Password) == "" {
		return profile.Profile{}, ErrMissingPassword
	}
	if !isValidPassword(in.Password) {
		return profile.Profile{}, ErrWeakPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	if exists {
		return profile.Profile{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return profile.Profile{}, ErrEmailAlreadyRegistered
		}
		return profile.Profile{}, ErrInternal
	}

	// The default record is persisted unconditionally; a write failure
	// leaves the session with the in-memory copy only.
	prof := profile.Default(u.ID, email, in.Name)
	if err := s.profiles.Create(ctx, prof); err != nil {
		s.logger.Printf("[Auth] profile write failed on register user_id=%s: %v", u.ID, err)
	}

	return prof, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (profile.Profile, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return profile.Profile{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return profile.Profile{}, ErrInvalidCredentials
		}
		return profile.Profile{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return profile.Profile{}, ErrInvalidCredentials
	}

	return s.reconcileProfile(ctx, u), nil
}

// reconcileProfile loads the record for a signed-in user, synthesizing and
// best-effort persisting a default when none exists yet.
func (s *Service) reconcileProfile(ctx context.Context, u user.User) profile.Profile {
	prof, err := s.profiles.GetByID(ctx, u.ID)
	if err == nil {
		return prof
	}

	if !errors.Is(err, profile.ErrNotFound) {
		s.logger.Printf("[Auth] profile read failed user_id=%s: %v", u.ID, err)
	}

	prof = profile.Default(u.ID, u.Email, "")
	if err := s.profiles.Create(ctx, prof); err != nil {
		s.logger.Printf("[Auth] profile write failed on login user_id=%s: %v", u.ID, err)
	}
	return prof
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}
