package runtime

import (
	"chat-core/domain/event"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Enqueues(t *testing.T) {
	req := require.New(t)
	events := make(chan event.RecordChange, 1)
	publisher := NewPublisher(logs.GetLoggerFromLevel(slog.LevelDebug), events)

	publisher.Publish(event.RecordChange{RecipientID: "alice"})

	received := <-events
	req.Equal("alice", received.RecipientID)
}

func TestPublisher_Drops_When_Buffer_Is_Full(t *testing.T) {
	req := require.New(t)
	events := make(chan event.RecordChange, 1)
	publisher := NewPublisher(logs.GetLoggerFromLevel(slog.LevelDebug), events)

	publisher.Publish(event.RecordChange{RecipientID: "alice"})
	// The buffer is full: this one is dropped instead of blocking the caller.
	publisher.Publish(event.RecordChange{RecipientID: "bob"})

	received := <-events
	req.Equal("alice", received.RecipientID)
	req.Empty(events)
}
