//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain"
	"chat-core/domain/event"
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// IConversationRepository is the store adapter for conversation records.
type IConversationRepository interface {
	Get(id string) (domain.Conversation, error)
	Save(conversation domain.Conversation) error
	Delete(id string) error
}

// MessagePair carries the created timestamps of a read-position update,
// resolved against one consistent store snapshot. OldCreatedAt is nil when
// there is no previous marker to compare against.
type MessagePair struct {
	NewCreatedAt time.Time
	OldCreatedAt *time.Time
}

// IMessageRepository is the store adapter for immutable message records.
type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetByID(conversationID string, id uuid.UUID) (domain.Message, error)
	// Page returns up to limit messages ordered by CreatedAt descending,
	// strictly older than before when a cursor is supplied.
	Page(conversationID string, limit int, before *time.Time) ([]domain.Message, error)
	CountAll(conversationID string) (int, error)
	CountAfter(conversationID string, after time.Time) (int, error)
	// ResolvePair reads both timestamps in a single transaction so a
	// concurrent marker regression cannot slip between two lookups.
	ResolvePair(conversationID string, newID uuid.UUID, oldID *uuid.UUID) (MessagePair, error)
}

// IReadMarkerRepository stores one logical row per (user, conversation).
type IReadMarkerRepository interface {
	Get(conversationID, userID string) (domain.ReadMarker, bool, error)
	Save(marker domain.ReadMarker) error
}

// Identity resolves the acting user of the current request.
type Identity interface {
	CurrentUser(ctx context.Context) (string, error)
}

// AssetSigner turns an attachment reference into a short-lived read-only URL.
type AssetSigner interface {
	Sign(name string) (string, error)
}

// Transport is the fire-and-forget pub/sub collaborator. A publish failure
// concerns only its recipient; the triggering mutation has already committed.
type Transport interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// EventPublisher enqueues record-change events for asynchronous fan-out.
type EventPublisher interface {
	Publish(evt event.RecordChange)
}

// EventSink receives payloads delivered through the in-process transport.
type EventSink interface {
	Consume(ctx context.Context, payload []byte) error
}

// MessageIndex maintains the full-text index over message bodies.
type MessageIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, conversationID, query string, limit int) ([]uuid.UUID, error)
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
