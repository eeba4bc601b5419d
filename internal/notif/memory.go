package notif

import (
	"context"
	"encoding/json"
)

const memoryQueueSize = 128

// MemoryBackend carries events over an in-process channel. Useful for
// single-binary deployments and tests.
type MemoryBackend struct {
	queue chan []byte
}

// NewMemoryBackend creates an in-memory event queue.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{queue: make(chan []byte, memoryQueueSize)}
}

// Push enqueues an event, blocking if the queue is full.
func (b *MemoryBackend) Push(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	select {
	case b.queue <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop dequeues the next event, blocking until one arrives.
func (b *MemoryBackend) Pop(ctx context.Context) (*Event, error) {
	select {
	case data := <-b.queue:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, err
		}
		return &ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
