package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

func TestStore_CartRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	cart := domain.Cart{
		{ProductID: "prod-1", ProductName: "Leather Belt", Quantity: 1, TotalPrice: 20.0},
	}
	require.NoError(t, store.SaveCart(ctx, "client-001", cart))

	got, err := store.GetCart(ctx, "client-001")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestStore_GetCart_MissingYieldsEmpty(t *testing.T) {
	store := NewStore()

	got, err := store.GetCart(context.Background(), "client-unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_GetCart_ReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "client-001", domain.Cart{
		{ProductID: "prod-1", Quantity: 1, TotalPrice: 20.0},
	}))

	got, err := store.GetCart(ctx, "client-001")
	require.NoError(t, err)
	got[0].Quantity = 99

	again, err := store.GetCart(ctx, "client-001")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Quantity)
}

func TestStore_DeleteCart(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "client-001", domain.Cart{{ProductID: "prod-1"}}))
	require.NoError(t, store.DeleteCart(ctx, "client-001"))

	got, err := store.GetCart(ctx, "client-001")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SessionRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "client-001", "shopper@example.com"))

	email, err := store.GetSession(ctx, "client-001")
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", email)

	require.NoError(t, store.ClearSession(ctx, "client-001"))

	email, err = store.GetSession(ctx, "client-001")
	require.NoError(t, err)
	assert.Empty(t, email)
}
