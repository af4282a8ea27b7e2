package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a bookable window in a coach's calendar.
type Slot struct {
	ID        uuid.UUID `json:"id"`
	CoachID   uuid.UUID `json:"coachId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Available bool      `json:"available"`
}

// Appointment statuses as reported by the platform.
const (
	AppointmentBooked    = "BOOKED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

type Appointment struct {
	ID        uuid.UUID `json:"id"`
	SlotID    uuid.UUID `json:"slotId"`
	MemberID  uuid.UUID `json:"memberId"`
	CoachID   uuid.UUID `json:"coachId"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reminder is a scheduled nudge sent to a member's device.
type Reminder struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"memberId"`
	Message  string    `json:"message"`
	Schedule string    `json:"schedule"`
	Enabled  bool      `json:"enabled"`
}
