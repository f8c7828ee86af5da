package course

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("course not found")

type Level string

const (
	LevelIniciante     Level = "Iniciante"
	LevelIntermediario Level = "Intermediário"
	LevelAvancado      Level = "Avançado"
)

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Level       Level    `json:"level"`
	Progress    int      `json:"progress"`
	IsEnrolled  bool     `json:"isEnrolled"`
	Skills      []string `json:"skills"`
	Instructor  string   `json:"instructor"`
}

type Repository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (Course, error)
	Replace(ctx context.Context, c Course) error
}
