package domain

import "github.com/google/uuid"

// ReadMarker is the per (user, conversation) pointer to the last message the
// user acknowledged reading. It only ever moves forward in message time.
type ReadMarker struct {
	ConversationID string
	UserID         string
	MessageID      uuid.UUID
}
