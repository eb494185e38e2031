package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserAuthenticated EventType = "user_authenticated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current UTC time.
func NewEvent(eventType EventType, userID int64, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserAuthenticatedPayload payload.
type UserAuthenticatedPayload struct {
	Email string `json:"email"`
	Roles string `json:"roles"`
}
