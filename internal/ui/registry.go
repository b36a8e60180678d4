package ui

import (
	"sync"
)

// Registry holds chrome state per client. State lives in process memory:
// chrome is cosmetic, so losing it on restart just means the next page load
// starts from the default configuration.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// For returns the state for a client, creating it on first access.
func (r *Registry) For(clientID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[clientID]
	if !ok {
		s = NewState()
		r.states[clientID] = s
	}
	return s
}
