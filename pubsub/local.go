package pubsub

import (
	"chat-core/runtime"
	"context"
	"log/slog"
	"time"
)

// LocalTransport dispatches payloads to in-process sinks looked up in the
// session registry. Useful for single-process deployments and tests.
type LocalTransport struct {
	registry    *runtime.Registry
	sinkTimeout time.Duration
	log         *slog.Logger
}

func NewLocalTransport(registry *runtime.Registry, sinkTimeout time.Duration, log *slog.Logger) *LocalTransport {
	return &LocalTransport{registry: registry, sinkTimeout: sinkTimeout, log: log}
}

func (t *LocalTransport) Publish(ctx context.Context, channel string, payload []byte) error {
	sink, ok := t.registry.Get(channel)
	if !ok {
		// Nobody listening on this channel.
		return nil
	}
	sinkCtx, cancel := context.WithTimeout(ctx, t.sinkTimeout)
	defer cancel()
	return sink.Consume(sinkCtx, payload)
}
