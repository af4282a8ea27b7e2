package models

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	EarnedCount int       `json:"earnedCount"`
}
