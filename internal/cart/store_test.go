package cart_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/cartkv"
	"github.com/storekit/storefront-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*cart.Store, *cartkv.Memory) {
	t.Helper()
	kv := cartkv.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cart.NewStore(logger, kv), kv
}

func TestStore_SignedDeltas(t *testing.T) {
	// final quantity is the sum of signed deltas floored at zero, and the
	// key is stored iff the floored quantity is positive
	tests := []struct {
		name    string
		deltas  []int // positive increments, negative decrements
		want    int
		wantKey bool
	}{
		{"single increment", []int{1}, 1, true},
		{"increments accumulate", []int{1, 1, 1}, 3, true},
		{"decrement removes at zero", []int{1, 1, -2}, 0, false},
		{"decrement floors below zero", []int{1, -5}, 0, false},
		{"decrement of empty cart stays empty", []int{-1}, 0, false},
		{"recover after floor", []int{1, -3, 1}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv := newStore(t)
			ctx := context.Background()

			for _, d := range tt.deltas {
				var err error
				if d > 0 {
					for range d {
						_, err = store.Increment(ctx, "s1", "p1")
						require.NoError(t, err)
					}
				} else {
					_, err = store.Decrement(ctx, "s1", "p1", -d)
					require.NoError(t, err)
				}
			}

			qty, err := store.Quantity(ctx, "s1", "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, qty)
			assert.Equal(t, tt.wantKey, kv.Has("cart_s1"))
		})
	}
}

func TestStore_EmptyCartCollapsesToAbsence(t *testing.T) {
	store, kv := newStore(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "s1", "p1")
	require.NoError(t, err)
	require.True(t, kv.Has("cart_s1"))

	_, err = store.Decrement(ctx, "s1", "p1", 1)
	require.NoError(t, err)

	// last item removed deletes the whole key, not an empty map
	assert.False(t, kv.Has("cart_s1"))
}

func TestStore_MalformedDataIsEmptyCart(t *testing.T) {
	store, kv := newStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "cart_s1", []byte("{broken")))

	items, err := store.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// and mutations on top of garbage start from scratch
	qty, err := store.Increment(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestStore_TenantIsolation(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "s1", "p1")
	require.NoError(t, err)

	qty, err := store.Quantity(ctx, "s2", "p1")
	require.NoError(t, err)
	assert.Zero(t, qty)
}

func TestStore_Subscribe(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	ch, cancel := store.Subscribe("s1")
	defer cancel()

	otherCh, otherCancel := store.Subscribe("s2")
	defer otherCancel()

	_, err := store.Increment(ctx, "s1", "p1")
	require.NoError(t, err)

	select {
	case <-ch:
	default:
		t.Fatal("expected change signal for s1")
	}

	select {
	case <-otherCh:
		t.Fatal("unexpected signal for other store")
	default:
	}

	// clearing also notifies
	require.NoError(t, store.Clear(ctx, "s1"))
	select {
	case <-ch:
	default:
		t.Fatal("expected change signal after clear")
	}
}

func TestStore_StagedCheckout(t *testing.T) {
	store, kv := newStore(t)
	ctx := context.Background()

	co := entities.Checkout{
		StoreID: "s1",
		Items: []entities.LineItem{
			{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2},
		},
		Amount: 1000,
	}
	require.NoError(t, store.Stage(ctx, "s1", co))
	require.True(t, kv.Has("checkout_s1"))

	got, err := store.Staged(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, co, got)

	require.NoError(t, store.ClearStaged(ctx, "s1"))
	_, err = store.Staged(ctx, "s1")
	assert.ErrorIs(t, err, entities.ErrNoStagedCheckout)
}

func TestStore_StagedMissing(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Staged(context.Background(), "s1")
	assert.ErrorIs(t, err, entities.ErrNoStagedCheckout)
}
