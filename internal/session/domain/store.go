// Package domain defines the turn-scoped request-attribute store. Attributes
// written during one turn are read by the next, letting a skill remember the
// flow in progress.
package domain

import (
	"context"
	"errors"
)

// Well-known attribute keys.
const (
	// KeyOutgoingIntent stores the serialized intent marker of the flow in
	// progress.
	KeyOutgoingIntent = "outgoingIntent"
)

// ErrAttributeNotFound is returned when no value exists for the key.
var ErrAttributeNotFound = errors.New("attribute not found")

// AttributeStore persists request attributes scoped to a session.
type AttributeStore interface {
	// Set stores a serialized value under key for the session.
	Set(ctx context.Context, sessionID, key, value string) error

	// Get retrieves the value for key, or ErrAttributeNotFound.
	Get(ctx context.Context, sessionID, key string) (string, error)

	// Delete removes the value for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, sessionID, key string) error
}
