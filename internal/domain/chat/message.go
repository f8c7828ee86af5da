package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Recommendations are display-only tags extracted from an assistant reply.
// They are not resolved against the catalog stores.
type Recommendations struct {
	Quests  []string `json:"quests,omitempty"`
	Courses []string `json:"courses,omitempty"`
	Skills  []string `json:"skills,omitempty"`
}

func (r Recommendations) IsEmpty() bool {
	return len(r.Quests) == 0 && len(r.Courses) == 0 && len(r.Skills) == 0
}

type Message struct {
	Role            Role             `json:"role"`
	Text            string           `json:"text"`
	Timestamp       time.Time        `json:"timestamp"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
}

// Log is an append-only per-user message sequence, process-lifetime only.
type Log interface {
	Append(ctx context.Context, userID uuid.UUID, msgs ...Message) error
	History(ctx context.Context, userID uuid.UUID) ([]Message, error)
}
