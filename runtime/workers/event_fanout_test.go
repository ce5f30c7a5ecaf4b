package workers

import (
	"chat-core/domain"
	"chat-core/domain/event"
	"chat-core/mocks"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Deliver(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	fanout := NewEventFanout(log, make(chan event.RecordChange), transport)

	record := domain.Conversation{ID: "conv-1", ParticipantIDs: []string{"alice", "bob"}}
	var delivered []byte
	transport.EXPECT().
		Publish(gomock.Any(), "user:alice", gomock.Any()).
		Do(func(ctx context.Context, channel string, payload []byte) {
			delivered = payload
		}).
		Return(nil).
		Times(1)

	fanout.Deliver(context.Background(), event.RecordChange{
		RecipientID: "alice",
		Entity:      event.EntityConversation,
		Action:      event.ActionCreate,
		Record:      record,
	})

	var decoded map[string]any
	req.NoError(json.Unmarshal(delivered, &decoded))
	req.Equal("conversation", decoded["entity_type"])
	req.Equal("create", decoded["action"])
	req.Contains(decoded, "record")
	// No original on a create.
	req.NotContains(decoded, "original_record")
}

func TestEventFanout_Delivery_Failure_Is_Contained(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	fanout := NewEventFanout(log, make(chan event.RecordChange), transport)

	transport.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("broker unreachable")).
		Times(1)

	// The failure is logged, never surfaced: the mutation already committed.
	fanout.Deliver(context.Background(), event.RecordChange{
		RecipientID: "alice",
		Entity:      event.EntityMessage,
		Action:      event.ActionCreate,
	})
}

func TestEventFanout_Run_Drains_The_Channel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	events := make(chan event.RecordChange, 8)
	fanout := NewEventFanout(log, events, transport)

	done := make(chan struct{})
	count := 0
	transport.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, channel string, payload []byte) {
			count++
			if count == 2 {
				close(done)
			}
		}).
		Return(nil).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fanout.Run(ctx)

	events <- event.RecordChange{RecipientID: "alice", Entity: event.EntityMessage, Action: event.ActionCreate}
	events <- event.RecordChange{RecipientID: "bob", Entity: event.EntityMessage, Action: event.ActionCreate}

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Events were not delivered in time")
	}
}

func TestChannelFor(t *testing.T) {
	require.Equal(t, "user:alice", ChannelFor("alice"))
}
