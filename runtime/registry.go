package runtime

import (
	"chat-core/contract"
	"sync"
)

// Registry tracks the in-process sink attached to each logical channel.
// One channel per recipient; a recipient without a registered sink simply
// misses the delivery, which matches the fire-and-forget contract.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink // map channel -> sink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.EventSink)}
}

func (r *Registry) Get(channel string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sessions[channel]
	return sink, ok
}

// Subscribe registers a recipient's active connection.
// A second subscription for the same channel replaces the previous sink.
func (r *Registry) Subscribe(channel string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[channel] = sink
}

// Unsubscribe removes a recipient's connection. Removing an unknown channel
// is a no-op so disconnect paths never have to check first.
func (r *Registry) Unsubscribe(channel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, channel)
}
