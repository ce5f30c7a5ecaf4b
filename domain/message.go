// Package domain contains core concepts of the chat system.
// This file defines Message records and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment references a binary asset held by the external asset store.
// Only the reference transits this core; signing happens on the query path.
type Attachment struct {
	Name string
}

// Message represents an immutable chat event inside one conversation.
// CreatedAt is assigned at commit time by the store clock and defines
// the only ordering this core guarantees.
type Message struct {
	ID             uuid.UUID
	ConversationID string
	CreatedBy      string
	Body           string
	Metadata       map[string]any
	Attachment     *Attachment
	CreatedAt      time.Time
}
