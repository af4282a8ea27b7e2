package models

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"memberId"`
	CoachID     uuid.UUID `json:"coachId"`
	LastMessage string    `json:"lastMessage"`
	Unread      int       `json:"unread"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ChatMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sentAt"`
}
