package runtime

import (
	"chat-core/domain/event"
	"log/slog"
)

// Publisher enqueues record-change events for asynchronous fan-out.
// Enqueueing never blocks a committed mutation: when the buffer is full the
// event is dropped and logged, matching the best-effort delivery contract.
type Publisher struct {
	log    *slog.Logger
	events chan<- event.RecordChange
}

func NewPublisher(log *slog.Logger, events chan<- event.RecordChange) *Publisher {
	return &Publisher{log: log, events: events}
}

func (p *Publisher) Publish(evt event.RecordChange) {
	select {
	case p.events <- evt:
	default:
		p.log.Debug("Event buffer full, dropping event",
			"recipient", evt.RecipientID, "entity", evt.Entity, "action", evt.Action)
	}
}
