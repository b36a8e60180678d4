package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_NewItem(t *testing.T) {
	var cart Cart
	cart.Add("prod-1", "Mens Winter Leathers Jacket", 48.0)

	require.Len(t, cart, 1)
	assert.Equal(t, "prod-1", cart[0].ProductID)
	assert.Equal(t, "Mens Winter Leathers Jacket", cart[0].ProductName)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 48.0, cart[0].TotalPrice)
}

func TestCart_Add_MergesSameProduct(t *testing.T) {
	var cart Cart
	cart.Add("prod-1", "Pure Garment Dyed Cotton Shirt", 45.0)
	cart.Add("prod-1", "Pure Garment Dyed Cotton Shirt", 45.0)

	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 90.0, cart[0].TotalPrice)
}

func TestCart_Add_AccumulatesChangedUnitPrice(t *testing.T) {
	var cart Cart
	cart.Add("prod-1", "Running Shoes", 100.0)
	cart.Add("prod-1", "Running Shoes", 80.0)

	// The running total records the prices actually paid, not quantity*price.
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 180.0, cart[0].TotalPrice)
}

func TestCart_Add_PreservesFirstAddOrder(t *testing.T) {
	var cart Cart
	cart.Add("prod-2", "Casual Sneakers", 60.0)
	cart.Add("prod-1", "Leather Belt", 20.0)
	cart.Add("prod-2", "Casual Sneakers", 60.0)

	require.Len(t, cart, 2)
	assert.Equal(t, "prod-2", cart[0].ProductID)
	assert.Equal(t, "prod-1", cart[1].ProductID)
}

func TestCart_FindIndex(t *testing.T) {
	cart := Cart{
		{ProductID: "prod-1"},
		{ProductID: "prod-2"},
	}
	assert.Equal(t, 0, cart.FindIndex("prod-1"))
	assert.Equal(t, 1, cart.FindIndex("prod-2"))
	assert.Equal(t, -1, cart.FindIndex("prod-3"))
}

func TestCart_TotalAmount(t *testing.T) {
	cart := Cart{
		{ProductID: "prod-1", Quantity: 2, TotalPrice: 90.0},
		{ProductID: "prod-2", Quantity: 1, TotalPrice: 20.0},
	}
	assert.Equal(t, 110.0, cart.TotalAmount())
}

func TestCart_ItemCount(t *testing.T) {
	cart := Cart{
		{ProductID: "prod-1", Quantity: 2},
		{ProductID: "prod-2", Quantity: 3},
	}
	assert.Equal(t, 5, cart.ItemCount())
	assert.Equal(t, 0, Cart{}.ItemCount())
}
