package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID       uuid.UUID       `json:"id"`
	MemberID uuid.UUID       `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   string          `json:"method"`
	Status   string          `json:"status"`
	PaidAt   *time.Time      `json:"paidAt,omitempty"`
}

type Subscription struct {
	ID        uuid.UUID       `json:"id"`
	MemberID  uuid.UUID       `json:"memberId"`
	PlanName  string          `json:"planName"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	StartedAt time.Time       `json:"startedAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}
