package repository

import (
	"context"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

// Store defines the persistence operations for per-client storefront state:
// the shopping cart and the logged-in session. Both are keyed by the opaque
// client ID issued to each browser.
type Store interface {
	// GetCart retrieves the cart for a client. A client with no stored cart
	// (or an unreadable one) gets an empty cart, never an error.
	GetCart(ctx context.Context, clientID string) (domain.Cart, error)

	// SaveCart persists the cart for a client, overwriting any existing cart.
	SaveCart(ctx context.Context, clientID string, cart domain.Cart) error

	// DeleteCart removes the cart for a client. Deleting an absent cart is
	// not an error.
	DeleteCart(ctx context.Context, clientID string) error

	// GetSession returns the logged-in email for a client, or empty string
	// when the client has no session.
	GetSession(ctx context.Context, clientID string) (string, error)

	// SetSession records the logged-in email for a client.
	SetSession(ctx context.Context, clientID, email string) error

	// ClearSession removes the session for a client.
	ClearSession(ctx context.Context, clientID string) error
}
