package session

import (
	"github.com/google/uuid"
)

const EventTypeSessionInvalidated = "session_invalidated"

// EventSessionInvalidated is broadcast when any call fails with an
// authorization error, forcing the whole process into the
// unauthenticated state.
type EventSessionInvalidated struct {
	EventID uuid.UUID
}

func NewEventSessionInvalidated() EventSessionInvalidated {
	return EventSessionInvalidated{EventID: uuid.New()}
}

func (e EventSessionInvalidated) ID() uuid.UUID {
	return e.EventID
}

func (e EventSessionInvalidated) Type() string {
	return EventTypeSessionInvalidated
}
