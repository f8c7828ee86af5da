package dto

import (
	"time"

	"synerh/internal/domain/profile"
	"synerh/internal/domain/reputation"

	"github.com/google/uuid"
)

type ReputationTier struct {
	Title    string  `json:"title"`
	Badge    string  `json:"badge"`
	Min      int     `json:"min"`
	Max      *int    `json:"max,omitempty"`
	Progress float64 `json:"progress"`
	ToNext   *int    `json:"points_to_next,omitempty"`
}

type ProfileResponse struct {
	ID             uuid.UUID      `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Avatar         string         `json:"avatar,omitempty"`
	Bio            string         `json:"bio,omitempty"`
	Experience     string         `json:"experience,omitempty"`
	Skills         []string       `json:"skills"`
	Certifications []string       `json:"certifications"`
	Reputation     int            `json:"reputation"`
	Tokens         int            `json:"tokens"`
	JoinDate       time.Time      `json:"joinDate"`
	Tier           ReputationTier `json:"tier"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	tier := reputation.Lookup(p.Reputation)

	resp := ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		Name:           p.Name,
		Avatar:         p.Avatar,
		Bio:            p.Bio,
		Experience:     p.Experience,
		Skills:         p.Skills,
		Certifications: p.Certifications,
		Reputation:     p.Reputation,
		Tokens:         p.Tokens,
		JoinDate:       p.JoinDate,
		Tier: ReputationTier{
			Title:    tier.Title,
			Badge:    tier.Badge,
			Min:      tier.Min,
			Progress: reputation.Progress(p.Reputation),
		},
	}

	if tier.Max != reputation.OpenEnded {
		max := tier.Max
		resp.Tier.Max = &max
	}
	if next, ok := reputation.Next(p.Reputation); ok {
		toNext := next.Min - p.Reputation
		resp.Tier.ToNext = &toNext
	}

	return resp
}
