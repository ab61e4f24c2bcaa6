package webstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesLines(t *testing.T) {
	cart := NewCart()

	cart.AddItem(CartItem{ProductID: 1, Name: "Album A", Price: 100000}, 2)
	cart.AddItem(CartItem{ProductID: 1, Name: "Album A", Price: 100000}, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddItemDefaultsQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ProductID: 7, Price: 50000}, 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ProductID: 1, Price: 100000}, 2)
	cart.AddItem(CartItem{ProductID: 2, Price: 200000}, 1)

	cart.UpdateQuantity(1, 4)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	// qty 0 menghapus baris
	cart.UpdateQuantity(2, 0)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(1), cart.Items[0].ProductID)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ProductID: 1, Price: 100000}, 1)
	cart.AddItem(CartItem{ProductID: 2, Price: 200000}, 1)

	cart.RemoveItem(1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)

	// menghapus id yang tidak ada tidak apa-apa
	cart.RemoveItem(99)
	assert.Len(t, cart.Items, 1)
}

func TestCartTotalAndItemCount(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total())
	assert.Equal(t, 0, cart.ItemCount())

	cart.AddItem(CartItem{ProductID: 1, Price: 100000}, 2)
	cart.AddItem(CartItem{ProductID: 2, Price: 350000}, 1)

	assert.Equal(t, 550000.0, cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ProductID: 1, Price: 100000}, 2)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())
}
