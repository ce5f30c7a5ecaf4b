package workers

import (
	"chat-core/contract"
	"chat-core/domain/event"
	"context"
	"encoding/json"
	"log/slog"
)

// EventFanout drains committed record-change events and delivers each one to
// its recipient's channel through the configured transport.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
// A failed delivery is logged and never reaches the request that produced
// the event: by the time fan-out runs, the mutation has already committed.
type EventFanout struct {
	log       *slog.Logger
	events    chan event.RecordChange
	transport contract.Transport
}

func NewEventFanout(log *slog.Logger, events chan event.RecordChange, transport contract.Transport) *EventFanout {
	return &EventFanout{log: log, events: events, transport: transport}
}

// ChannelFor names the logical channel of one recipient.
func ChannelFor(userID string) string {
	return "user:" + userID
}

// envelope is the wire shape of one delivered event.
type envelope struct {
	Entity   event.Entity `json:"entity_type"`
	Action   event.Action `json:"action"`
	Record   any          `json:"record"`
	Original any          `json:"original_record,omitempty"`
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Deliver(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fan-out")
			return nil
		}
	}
}

// Deliver publishes one event to its recipient's channel.
func (w *EventFanout) Deliver(ctx context.Context, evt event.RecordChange) {
	payload, err := json.Marshal(envelope{
		Entity:   evt.Entity,
		Action:   evt.Action,
		Record:   evt.Record,
		Original: evt.Original,
	})
	if err != nil {
		w.log.Error("Dropping unmarshalable event", "recipient", evt.RecipientID, "error", err)
		return
	}
	if err := w.transport.Publish(ctx, ChannelFor(evt.RecipientID), payload); err != nil {
		w.log.Warn("Event delivery failed",
			"recipient", evt.RecipientID, "entity", evt.Entity, "action", evt.Action, "error", err)
	}
}
