package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"synerh/internal/domain/profile"
	"synerh/internal/domain/user"
)

type memUserRepo struct {
	byEmail map[string]user.User

	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type memProfileRepo struct {
	byID    map[uuid.UUID]profile.Profile
	creates int

	createErr error
	getErr    error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byID: make(map[uuid.UUID]profile.Profile)}
}

func (r *memProfileRepo) Create(_ context.Context, p profile.Profile) error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[p.ID] = p
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	if r.getErr != nil {
		return profile.Profile{}, r.getErr
	}
	p, ok := r.byID[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *memProfileRepo) Save(_ context.Context, p profile.Profile) error {
	if _, ok := r.byID[p.ID]; !ok {
		return profile.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRegister_CreatesDefaultRecord(t *testing.T) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	svc := NewService(users, profiles, quietLogger())

	prof, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Ana@Example.com",
		Password: "super-secret",
		Name:     "Ana",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if prof.Name != "Ana" {
		t.Fatalf("name = %q, want Ana", prof.Name)
	}
	if prof.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", prof.Email)
	}
	if prof.Reputation != 0 || prof.Tokens != 0 {
		t.Fatalf("fresh record must start at zero, got rep=%d tokens=%d", prof.Reputation, prof.Tokens)
	}
	if prof.Skills == nil || len(prof.Skills) != 0 {
		t.Fatalf("skills must be empty, got %v", prof.Skills)
	}
	if prof.JoinDate.After(time.Now().UTC()) {
		t.Fatalf("join date in the future: %v", prof.JoinDate)
	}

	u, err := users.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("credential record missing: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("super-secret")) != nil {
		t.Fatalf("stored hash does not match the password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMemUserRepo()
	svc := NewService(users, newMemProfileRepo(), quietLogger())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "super-secret"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Email: "A@B.com", Password: "other-secret"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMemUserRepo(), newMemProfileRepo(), quietLogger())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"no at sign", RegisterInput{Email: "not-an-email", Password: "super-secret"}, ErrMalformedEmail},
		{"empty email", RegisterInput{Email: "  ", Password: "super-secret"}, ErrMalformedEmail},
		{"blank password", RegisterInput{Email: "a@b.com", Password: "   "}, ErrMissingPassword},
		{"short password", RegisterInput{Email: "a@b.com", Password: "1234567"}, ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegister_ProfileWriteFailureStillSucceeds(t *testing.T) {
	profiles := newMemProfileRepo()
	profiles.createErr = errors.New("store down")
	svc := NewService(newMemUserRepo(), profiles, quietLogger())

	prof, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "super-secret", Name: "A"})
	if err != nil {
		t.Fatalf("record-store failure must not block registration: %v", err)
	}
	if prof.Email != "a@b.com" {
		t.Fatalf("unexpected profile: %+v", prof)
	}
}

func TestLogin_Success(t *testing.T) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	svc := NewService(users, profiles, quietLogger())
	ctx := context.Background()

	reg, _ := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "super-secret", Name: "A"})

	prof, err := svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "super-secret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if prof.ID != reg.ID {
		t.Fatalf("login returned a different record: %s vs %s", prof.ID, reg.ID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newMemUserRepo()
	svc := NewService(users, newMemProfileRepo(), quietLogger())
	ctx := context.Background()

	_, _ = svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "super-secret"})

	for _, in := range []LoginInput{
		{Email: "a@b.com", Password: "wrong-password"},
		{Email: "nobody@b.com", Password: "super-secret"},
		{Email: "", Password: ""},
	} {
		if _, err := svc.Login(ctx, in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %+v: err = %v, want ErrInvalidCredentials", in, err)
		}
	}
}

func TestLogin_SynthesizesMissingRecordOnce(t *testing.T) {
	users := newMemUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	u := user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: string(hash)}
	_ = users.Create(context.Background(), u)

	profiles := newMemProfileRepo()
	svc := NewService(users, profiles, quietLogger())
	ctx := context.Background()

	first, err := svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "super-secret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.ID != u.ID || first.Reputation != 0 {
		t.Fatalf("expected synthesized default record, got %+v", first)
	}
	if profiles.creates != 1 {
		t.Fatalf("expected one record write, got %d", profiles.creates)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "super-secret"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profiles.creates != 1 {
		t.Fatalf("second login must reuse the record, creates = %d", profiles.creates)
	}
}
