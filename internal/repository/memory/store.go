package memory

import (
	"context"
	"sync"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

// Store implements repository.Store using in-memory maps. It is used in
// tests and when running without a Redis instance.
type Store struct {
	mu       sync.RWMutex
	carts    map[string]domain.Cart
	sessions map[string]string
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		carts:    make(map[string]domain.Cart),
		sessions: make(map[string]string),
	}
}

// GetCart retrieves the cart for a client. A client with no stored cart
// gets an empty cart.
func (s *Store) GetCart(_ context.Context, clientID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[clientID]
	if !ok {
		return domain.Cart{}, nil
	}

	// Copy so callers cannot mutate stored state through the returned slice.
	out := make(domain.Cart, len(cart))
	copy(out, cart)
	return out, nil
}

// SaveCart persists the cart for a client.
func (s *Store) SaveCart(_ context.Context, clientID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(domain.Cart, len(cart))
	copy(stored, cart)
	s.carts[clientID] = stored
	return nil
}

// DeleteCart removes the cart for a client.
func (s *Store) DeleteCart(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, clientID)
	return nil
}

// GetSession returns the logged-in email for a client, or empty string.
func (s *Store) GetSession(_ context.Context, clientID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[clientID], nil
}

// SetSession records the logged-in email for a client.
func (s *Store) SetSession(_ context.Context, clientID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[clientID] = email
	return nil
}

// ClearSession removes the session for a client.
func (s *Store) ClearSession(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, clientID)
	return nil
}
