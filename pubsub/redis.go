// Package pubsub provides the transport implementations behind event
// fan-out: Redis channels across processes, or an in-process sink registry.
package pubsub

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisTransport delivers payloads through Redis pub/sub channels.
// Fire-and-forget: a channel without subscribers drops the payload.
type RedisTransport struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisTransport(client *redis.Client, log *slog.Logger) *RedisTransport {
	return &RedisTransport{client: client, log: log}
}

func (t *RedisTransport) Publish(ctx context.Context, channel string, payload []byte) error {
	return t.client.Publish(ctx, channel, payload).Err()
}
