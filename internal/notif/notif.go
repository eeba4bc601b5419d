// Package notif is a small event queue between the core and interested
// consumers (e.g. a search indexer). Events are JSON-encoded and carried by
// either an in-memory channel or a Redis list.
package notif

import "context"

// Event names for index maintenance.
const (
	EventIndexAddNode    = "index_add_node"
	EventIndexRemoveNode = "index_remove_node"
)

// State of the originating operation.
type State string

const (
	StateStarted State = "started"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Event is one queue message.
type Event struct {
	Name    string                 `json:"name"`
	State   State                  `json:"state"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Backend pushes and pops events. Pop blocks until an event arrives or the
// context is cancelled.
type Backend interface {
	Push(ctx context.Context, ev Event) error
	Pop(ctx context.Context) (*Event, error)
}

// IndexAdd builds an event asking the indexer to (re)index the given nodes.
func IndexAdd(nodeIDs ...string) Event {
	return Event{
		Name:    EventIndexAddNode,
		State:   StateStarted,
		Payload: map[string]interface{}{"node_ids": nodeIDs},
	}
}

// IndexRemove builds an event asking the indexer to drop the given nodes.
func IndexRemove(nodeIDs ...string) Event {
	return Event{
		Name:    EventIndexRemoveNode,
		State:   StateStarted,
		Payload: map[string]interface{}{"node_ids": nodeIDs},
	}
}
