package quest

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("quest not found")

// Difficulty is one of three ordered tiers, lowest first.
type Difficulty string

const (
	DifficultyIniciante     Difficulty = "Iniciante"
	DifficultyIntermediario Difficulty = "Intermediário"
	DifficultyAvancado      Difficulty = "Avançado"
)

type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Reward      int        `json:"reward"`
	Duration    string     `json:"duration"`
	Skills      []string   `json:"skills"`
	Company     string     `json:"company"`
	IsAccepted  bool       `json:"isAccepted"`
	CompletedBy string     `json:"completedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Repository interface {
	List(ctx context.Context) ([]Quest, error)
	GetByID(ctx context.Context, id string) (Quest, error)
	Replace(ctx context.Context, q Quest) error
}
