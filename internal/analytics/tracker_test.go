package analytics

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventPermissionCardSent, EventTypeList, "sess-1")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventPermissionCardSent, event.Name)
	assert.Equal(t, EventTypeList, event.Type)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestNoopTracker(t *testing.T) {
	tracker := NewNoopTracker(nil)

	err := tracker.Track(context.Background(), NewEvent("anything", "", "sess-1"))
	require.NoError(t, err)
	require.NoError(t, tracker.Close())
}
