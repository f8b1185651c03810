package checkout_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/cartkv"
	"github.com/storekit/storefront-service/internal/checkout"
	"github.com/storekit/storefront-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog struct {
	snap entities.Snapshot
}

func (c staticCatalog) Snapshot(context.Context, string) (entities.Snapshot, error) {
	return c.snap, nil
}

func TestResolve(t *testing.T) {
	snap := entities.Snapshot{
		StoreID: "s1",
		Items: []entities.CatalogItem{
			{ItemID: "p1", StoreID: "s1", Name: "Mug", Price: 500, Kind: entities.KindProduct},
			{ItemID: "p2", StoreID: "s1", Name: "Poster", Price: 1200, Kind: entities.KindProduct},
		},
	}

	tests := []struct {
		name        string
		cart        cart.Cart
		wantItems   []entities.LineItem
		wantDropped []string
	}{
		{
			name: "round trip",
			cart: cart.Cart{"p1": 2, "p2": 1},
			wantItems: []entities.LineItem{
				{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2},
				{ItemID: "p2", Name: "Poster", UnitPrice: 1200, Quantity: 1},
			},
		},
		{
			name: "deleted item dropped silently",
			cart: cart.Cart{"p1": 1, "gone": 3},
			wantItems: []entities.LineItem{
				{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 1},
			},
			wantDropped: []string{"gone"},
		},
		{
			name:        "only stale entries yields empty list",
			cart:        cart.Cart{"svc1": 1},
			wantItems:   []entities.LineItem{},
			wantDropped: []string{"svc1"},
		},
		{
			name:      "empty cart",
			cart:      cart.Cart{},
			wantItems: []entities.LineItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, dropped := checkout.Resolve(tt.cart, snap)
			assert.Equal(t, tt.wantItems, resolved)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestAssembler_Assemble(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := cartkv.NewMemory()
	carts := cart.NewStore(logger, kv)
	ctx := context.Background()

	for range 2 {
		_, err := carts.Increment(ctx, "s1", "p1")
		require.NoError(t, err)
	}
	_, err := carts.Increment(ctx, "s1", "p2")
	require.NoError(t, err)
	_, err = carts.Increment(ctx, "s1", "deleted")
	require.NoError(t, err)

	catalog := staticCatalog{snap: entities.Snapshot{
		StoreID: "s1",
		Items: []entities.CatalogItem{
			{ItemID: "p1", Name: "Mug", Price: 500},
			{ItemID: "p2", Name: "Poster", Price: 1200},
		},
	}}

	a := checkout.NewAssembler(logger, catalog, carts)

	co, err := a.Assemble(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 2200, co.Amount)
	assert.Equal(t, []entities.LineItem{
		{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2},
		{ItemID: "p2", Name: "Poster", UnitPrice: 1200, Quantity: 1},
	}, co.Items)

	// the resolved checkout is staged for the order step
	staged, err := carts.Staged(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, co, staged)
}

func TestAssembler_AssembleEmptyAfterDrops(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	carts := cart.NewStore(logger, cartkv.NewMemory())
	ctx := context.Background()

	_, err := carts.Increment(ctx, "s1", "svc1")
	require.NoError(t, err)

	a := checkout.NewAssembler(logger, staticCatalog{snap: entities.Snapshot{StoreID: "s1"}}, carts)

	co, err := a.Assemble(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, co.Items)
	assert.Zero(t, co.Amount)
}
