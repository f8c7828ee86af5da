package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the durable user record: reputation, token balance and the
// free-form career fields the user edits on the profile screen.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Avatar         string    `json:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Skills         []string  `json:"skills"`
	Certifications []string  `json:"certifications"`
	Reputation     int       `json:"reputation"`
	Tokens         int       `json:"tokens"`
	JoinDate       time.Time `json:"joinDate"`
}

// Update is an explicit partial-update: nil fields are left untouched.
// Slice fields use nil (not empty) to mean "no change".
type Update struct {
	Name           *string
	Avatar         *string
	Bio            *string
	Experience     *string
	Skills         []string
	Certifications []string
}

// Apply merges the update into p field by field.
func (u Update) Apply(p Profile) Profile {
	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Experience != nil {
		p.Experience = *u.Experience
	}
	if u.Skills != nil {
		p.Skills = u.Skills
	}
	if u.Certifications != nil {
		p.Certifications = u.Certifications
	}
	return p
}

// IsEmpty reports whether the update touches no field at all.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Avatar == nil && u.Bio == nil &&
		u.Experience == nil && u.Skills == nil && u.Certifications == nil
}

// Default builds the record synthesized on first sign-in: zero reputation,
// zero tokens, empty lists, join date now. The name falls back to the part
// of the email before the "@".
func Default(id uuid.UUID, email, name string) Profile {
	name = strings.TrimSpace(name)
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = "Usuário"
		}
	}
	return Profile{
		ID:             id,
		Email:          email,
		Name:           name,
		Skills:         []string{},
		Certifications: []string{},
		Reputation:     0,
		Tokens:         0,
		JoinDate:       time.Now().UTC(),
	}
}

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
