// Package analytics emits usage events to a message broker. Emission is
// best-effort: callers on the response path log failures and move on.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names emitted by the core.
const (
	EventPermissionCardSent = "permission_card_sent"
	EventTypeList           = "list_permissions"
)

// Event is a single analytics event.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type,omitempty"`
	SessionID  string            `json:"sessionId,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// NewEvent creates an event with a fresh id and timestamp.
func NewEvent(name, eventType, sessionID string) Event {
	return Event{
		ID:         uuid.New(),
		Name:       name,
		Type:       eventType,
		SessionID:  sessionID,
		OccurredAt: time.Now().UTC(),
	}
}

// Tracker publishes analytics events.
type Tracker interface {
	// Track sends the event.
	Track(ctx context.Context, event Event) error

	// Close closes the tracker connection.
	Close() error
}
