package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gungun-1908/InsightCart/internal/domain"
)

func setupTestRedis(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewStore(client, 24*time.Hour)
	return store, mr
}

func sampleCart() domain.Cart {
	return domain.Cart{
		{
			ProductID:   "prod-1",
			ProductName: "Mens Winter Leathers Jacket",
			Quantity:    2,
			TotalPrice:  96.0,
		},
		{
			ProductID:   "prod-2",
			ProductName: "Casual Sneakers",
			Quantity:    1,
			TotalPrice:  60.0,
		},
	}
}

// ---------------------------------------------------------------------------
// Carts
// ---------------------------------------------------------------------------

func TestStore_GetCart_Success(t *testing.T) {
	store, mr := setupTestRedis(t)

	cart := sampleCart()
	data, err := json.Marshal(cart)
	require.NoError(t, err)

	require.NoError(t, mr.Set("cart:client-001", string(data)))

	got, err := store.GetCart(context.Background(), "client-001")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "prod-1", got[0].ProductID)
	assert.Equal(t, "Mens Winter Leathers Jacket", got[0].ProductName)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, 96.0, got[0].TotalPrice)
	assert.Equal(t, "prod-2", got[1].ProductID)
}

func TestStore_GetCart_MissingYieldsEmpty(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.GetCart(context.Background(), "client-unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_GetCart_UnreadableYieldsEmpty(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, mr.Set("cart:client-001", "{not valid json"))

	got, err := store.GetCart(context.Background(), "client-001")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SaveCart_RoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, store.SaveCart(context.Background(), "client-001", cart))

	assert.True(t, mr.Exists("cart:client-001"))

	got, err := store.GetCart(context.Background(), "client-001")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestStore_SaveCart_SetsTTL(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.SaveCart(context.Background(), "client-001", sampleCart()))

	ttl := mr.TTL("cart:client-001")
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestStore_DeleteCart(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.SaveCart(context.Background(), "client-001", sampleCart()))
	require.NoError(t, store.DeleteCart(context.Background(), "client-001"))

	assert.False(t, mr.Exists("cart:client-001"))
}

func TestStore_DeleteCart_AbsentIsNoError(t *testing.T) {
	store, _ := setupTestRedis(t)

	assert.NoError(t, store.DeleteCart(context.Background(), "client-missing"))
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

func TestStore_Session_RoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.SetSession(context.Background(), "client-001", "shopper@example.com"))

	assert.True(t, mr.Exists("session:client-001"))

	email, err := store.GetSession(context.Background(), "client-001")
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", email)
}

func TestStore_GetSession_MissingYieldsEmpty(t *testing.T) {
	store, _ := setupTestRedis(t)

	email, err := store.GetSession(context.Background(), "client-unknown")
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestStore_ClearSession(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.SetSession(context.Background(), "client-001", "shopper@example.com"))
	require.NoError(t, store.ClearSession(context.Background(), "client-001"))

	assert.False(t, mr.Exists("session:client-001"))
}

func TestStore_SetSession_SetsTTL(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.SetSession(context.Background(), "client-001", "shopper@example.com"))

	ttl := mr.TTL("session:client-001")
	assert.Equal(t, 24*time.Hour, ttl)
}
