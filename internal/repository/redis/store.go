package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gungun-1908/InsightCart/internal/domain"
	"github.com/gungun-1908/InsightCart/pkg/logger"
)

const (
	cartKeyPrefix    = "cart:"
	sessionKeyPrefix = "session:"
)

// Store implements repository.Store using Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis-backed store. The TTL applies to both cart
// and session keys so abandoned clients age out together.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// GetCart retrieves the cart for a client. A missing key yields an empty
// cart. A stored value that no longer parses is treated the same way: the
// cart is a convenience cache, so corruption degrades to an empty cart
// rather than a failed page.
func (s *Store) GetCart(ctx context.Context, clientID string) (domain.Cart, error) {
	key := cartKeyPrefix + clientID

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.Cart{}, nil
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.FromContext(ctx).Warn("discarding unreadable stored cart", "error", err)
		return domain.Cart{}, nil
	}

	return cart, nil
}

// SaveCart persists the cart for a client with the configured TTL.
func (s *Store) SaveCart(ctx context.Context, clientID string, cart domain.Cart) error {
	key := cartKeyPrefix + clientID

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// DeleteCart removes the cart for a client.
func (s *Store) DeleteCart(ctx context.Context, clientID string) error {
	key := cartKeyPrefix + clientID

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}

// GetSession returns the logged-in email for a client, or empty string when
// no session exists.
func (s *Store) GetSession(ctx context.Context, clientID string) (string, error) {
	key := sessionKeyPrefix + clientID

	email, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis get session: %w", err)
	}

	return email, nil
}

// SetSession records the logged-in email for a client with the configured TTL.
func (s *Store) SetSession(ctx context.Context, clientID, email string) error {
	key := sessionKeyPrefix + clientID

	if err := s.client.Set(ctx, key, email, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

// ClearSession removes the session for a client.
func (s *Store) ClearSession(ctx context.Context, clientID string) error {
	key := sessionKeyPrefix + clientID

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}

	return nil
}
