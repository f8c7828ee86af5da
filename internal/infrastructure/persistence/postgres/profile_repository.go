package postgres

import (
	"context"
	"errors"

	"synerh/internal/database"
	"synerh/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository is the durable user-record store. Reads and writes are
// whole-record: merge semantics live in the profile usecase.
type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO user_profiles
			(user_id, email, name, avatar, bio, experience, skills, certifications, reputation, tokens, join_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO NOTHING`,
		p.ID, p.Email, p.Name, p.Avatar, p.Bio, p.Experience,
		p.Skills, p.Certifications, p.Reputation, p.Tokens, p.JoinDate,
	)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id, email, name, avatar, bio, experience, skills, certifications, reputation, tokens, join_date
		 FROM user_profiles WHERE user_id = $1`,
		id,
	)

	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Name, &p.Avatar, &p.Bio, &p.Experience,
		&p.Skills, &p.Certifications, &p.Reputation, &p.Tokens, &p.JoinDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) Save(ctx context.Context, p profile.Profile) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE user_profiles SET
			email = $2, name = $3, avatar = $4, bio = $5, experience = $6,
			skills = $7, certifications = $8, reputation = $9, tokens = $10
		 WHERE user_id = $1`,
		p.ID, p.Email, p.Name, p.Avatar, p.Bio, p.Experience,
		p.Skills, p.Certifications, p.Reputation, p.Tokens,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}
