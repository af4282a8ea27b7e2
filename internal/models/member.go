package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a platform user on a quit journey.
type Member struct {
	ID                uuid.UUID  `json:"id"`
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`
	Status            string     `json:"status"`
	JoinedAt          time.Time  `json:"joinedAt"`
	QuitDate          *time.Time `json:"quitDate,omitempty"`
	SmokeFreeDays     int        `json:"smokeFreeDays"`
	CigarettesAvoided int        `json:"cigarettesAvoided"`
}

// Coach provides scheduled counseling sessions to members.
type Coach struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	Rating    float64   `json:"rating"`
	Active    bool      `json:"active"`
}
