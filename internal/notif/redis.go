package notif

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisBackend carries events over a Redis list so multiple processes
// (server, worker, indexer) can share one queue.
type RedisBackend struct {
	client  *redis.Client
	channel string
}

// NewRedisBackend creates a Redis-backed event queue on the given list key.
func NewRedisBackend(client *redis.Client, channel string) *RedisBackend {
	if channel == "" {
		channel = "docshelf:notif"
	}
	return &RedisBackend{client: client, channel: channel}
}

// Push appends an event to the list.
func (b *RedisBackend) Push(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.client.LPush(ctx, b.channel, data).Err()
}

// Pop blocks until an event is available or the context is cancelled.
func (b *RedisBackend) Pop(ctx context.Context) (*Event, error) {
	res, err := b.client.BRPop(ctx, 0, b.channel).Result()
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value].
	var ev Event
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
