// Package checkout turns a cart's id->quantity map into a priced list of
// line items against a catalog snapshot.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/entities"
)

type Catalog interface {
	Snapshot(ctx context.Context, storeID string) (entities.Snapshot, error)
}

type Carts interface {
	Items(ctx context.Context, storeID string) (cart.Cart, error)
	Stage(ctx context.Context, storeID string, co entities.Checkout) error
	Staged(ctx context.Context, storeID string) (entities.Checkout, error)
}

type Assembler struct {
	logger  *slog.Logger
	catalog Catalog
	carts   Carts
}

func NewAssembler(logger *slog.Logger, catalog Catalog, carts Carts) *Assembler {
	return &Assembler{
		logger:  logger.With(slog.String("component", "checkout")),
		catalog: catalog,
		carts:   carts,
	}
}

// Assemble resolves the current cart against a fresh catalog snapshot,
// stages the result and returns it. Cart entries no longer present in the
// catalog are dropped without error.
func (a *Assembler) Assemble(ctx context.Context, storeID string) (entities.Checkout, error) {
	items, err := a.carts.Items(ctx, storeID)
	if err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to read cart: %w", err)
	}

	snap, err := a.catalog.Snapshot(ctx, storeID)
	if err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	resolved, dropped := Resolve(items, snap)
	for _, id := range dropped {
		a.logger.Debug("cart item missing from catalog, dropped",
			slog.String("store_id", storeID), slog.String("item_id", id))
	}

	co := entities.Checkout{
		StoreID: storeID,
		Items:   resolved,
		Amount:  amount(resolved),
	}

	if err := a.carts.Stage(ctx, storeID, co); err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to stage checkout: %w", err)
	}
	return co, nil
}

// Staged returns the checkout staged by the last Assemble.
func (a *Assembler) Staged(ctx context.Context, storeID string) (entities.Checkout, error) {
	return a.carts.Staged(ctx, storeID)
}

// Resolve prices every cart entry found in the snapshot and reports the ids
// it had to drop. Output is ordered by item id so repeated assemblies of the
// same cart stage identical checkouts.
func Resolve(c cart.Cart, snap entities.Snapshot) (resolved []entities.LineItem, dropped []string) {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resolved = make([]entities.LineItem, 0, len(ids))
	for _, id := range ids {
		item, ok := snap.Find(id)
		if !ok {
			dropped = append(dropped, id)
			continue
		}
		resolved = append(resolved, entities.LineItem{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  c[id],
		})
	}
	return resolved, dropped
}

func amount(items []entities.LineItem) int {
	total := 0
	for _, it := range items {
		total += it.UnitPrice * it.Quantity
	}
	return total
}
