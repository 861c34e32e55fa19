package cartstore_test

import (
	"testing"
	"time"

	"foodcourt/internal/adapters/out/redis/cartstore"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*cartstore.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cartstore.NewRedisCartStore(client), mr
}

func TestRedisCartStore_Get_NoCart_ReturnsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	lines, err := store.Get(t.Context(), kernel.NewUUID())

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisCartStore_PutThenGet_RoundTrips(t *testing.T) {
	store, _ := newTestStore(t)
	customerID := kernel.NewUUID()

	dishOne := kernel.NewUUID()
	dishTwo := kernel.NewUUID()
	want := []ports.CartLine{
		{DishID: dishOne, Quantity: 2},
		{DishID: dishTwo, Quantity: 1},
	}

	require.NoError(t, store.Put(t.Context(), customerID, want))

	got, err := store.Get(t.Context(), customerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].DishID.IsEqual(dishOne))
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[1].DishID.IsEqual(dishTwo))
	assert.Equal(t, 1, got[1].Quantity)
}

func TestRedisCartStore_Put_IsolatedPerCustomer(t *testing.T) {
	store, _ := newTestStore(t)
	customerOne := kernel.NewUUID()
	customerTwo := kernel.NewUUID()

	require.NoError(t, store.Put(t.Context(), customerOne,
		[]ports.CartLine{{DishID: kernel.NewUUID(), Quantity: 1}}))

	lines, err := store.Get(t.Context(), customerTwo)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisCartStore_Put_EmptyCart_Clears(t *testing.T) {
	store, mr := newTestStore(t)
	customerID := kernel.NewUUID()

	require.NoError(t, store.Put(t.Context(), customerID,
		[]ports.CartLine{{DishID: kernel.NewUUID(), Quantity: 1}}))
	require.NoError(t, store.Put(t.Context(), customerID, nil))

	assert.Empty(t, mr.Keys())
}

func TestRedisCartStore_Put_RefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	customerID := kernel.NewUUID()

	require.NoError(t, store.Put(t.Context(), customerID,
		[]ports.CartLine{{DishID: kernel.NewUUID(), Quantity: 1}}))

	mr.FastForward(cartstore.DefaultCartTTL + time.Minute)

	lines, err := store.Get(t.Context(), customerID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisCartStore_Clear_RemovesCart(t *testing.T) {
	store, _ := newTestStore(t)
	customerID := kernel.NewUUID()

	require.NoError(t, store.Put(t.Context(), customerID,
		[]ports.CartLine{{DishID: kernel.NewUUID(), Quantity: 3}}))
	require.NoError(t, store.Clear(t.Context(), customerID))

	lines, err := store.Get(t.Context(), customerID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisCartStore_Clear_AbsentCart_NoOp(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Clear(t.Context(), kernel.NewUUID()))
}
