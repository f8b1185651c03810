// Package cart holds the per-store pre-purchase intent list: item id to
// quantity, persisted through the cartkv port, plus the staged checkout a
// visitor builds right before paying.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/storekit/storefront-service/internal/cartkv"
	"github.com/storekit/storefront-service/internal/entities"
)

type Cart map[string]int

func cartKey(storeID string) string {
	return "cart_" + storeID
}

func checkoutKey(storeID string) string {
	return "checkout_" + storeID
}

// Store mutates carts with read-modify-write over the KV port. Concurrent
// writers for the same store are last-write-wins, subscribers re-read the
// whole map on every change signal.
type Store struct {
	logger *slog.Logger
	kv     cartkv.KV

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func NewStore(logger *slog.Logger, kv cartkv.KV) *Store {
	return &Store{
		logger: logger.With(slog.String("component", "cart")),
		kv:     kv,
		subs:   make(map[string]map[int]chan struct{}),
	}
}

// Subscribe registers an observer for the store's cart. The returned channel
// receives a signal after every mutation, cancel must be called when the
// observer unmounts.
func (s *Store) Subscribe(storeID string) (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan struct{}, 1)
	if s.subs[storeID] == nil {
		s.subs[storeID] = make(map[int]chan struct{})
	}
	s.subs[storeID][id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[storeID], id)
		if len(s.subs[storeID]) == 0 {
			delete(s.subs, storeID)
		}
	}
	return ch, cancel
}

// notify is best-effort: a subscriber with a pending signal is not sent
// another one.
func (s *Store) notify(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs[storeID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) Increment(ctx context.Context, storeID, itemID string) (int, error) {
	c, err := s.load(ctx, storeID)
	if err != nil {
		return 0, err
	}

	c[itemID]++
	qty := c[itemID]

	if err := s.save(ctx, storeID, c); err != nil {
		return 0, err
	}
	return qty, nil
}

// Decrement subtracts amount and removes the item when it reaches zero. An
// amount below one is treated as one.
func (s *Store) Decrement(ctx context.Context, storeID, itemID string, amount int) (int, error) {
	if amount < 1 {
		amount = 1
	}

	c, err := s.load(ctx, storeID)
	if err != nil {
		return 0, err
	}

	qty := c[itemID] - amount
	if qty <= 0 {
		qty = 0
		delete(c, itemID)
	} else {
		c[itemID] = qty
	}

	if err := s.save(ctx, storeID, c); err != nil {
		return 0, err
	}
	return qty, nil
}

func (s *Store) Quantity(ctx context.Context, storeID, itemID string) (int, error) {
	c, err := s.load(ctx, storeID)
	if err != nil {
		return 0, err
	}
	return c[itemID], nil
}

func (s *Store) Items(ctx context.Context, storeID string) (Cart, error) {
	return s.load(ctx, storeID)
}

func (s *Store) Clear(ctx context.Context, storeID string) error {
	if err := s.kv.Delete(ctx, cartKey(storeID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.notify(storeID)
	return nil
}

// Stage persists the resolved checkout pending payment.
func (s *Store) Stage(ctx context.Context, storeID string, co entities.Checkout) error {
	data, err := json.Marshal(stagedCheckout{
		Items:  toStagedItems(co.Items),
		Amount: co.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal checkout: %w", err)
	}
	if err := s.kv.Set(ctx, checkoutKey(storeID), data); err != nil {
		return fmt.Errorf("failed to stage checkout: %w", err)
	}
	return nil
}

func (s *Store) Staged(ctx context.Context, storeID string) (entities.Checkout, error) {
	data, err := s.kv.Get(ctx, checkoutKey(storeID))
	if errors.Is(err, cartkv.ErrNotFound) {
		return entities.Checkout{}, entities.ErrNoStagedCheckout
	}
	if err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to read staged checkout: %w", err)
	}

	var staged stagedCheckout
	if err := json.Unmarshal(data, &staged); err != nil {
		s.logger.Debug("malformed staged checkout, treating as absent",
			slog.String("store_id", storeID), slog.Any("error", err))
		return entities.Checkout{}, entities.ErrNoStagedCheckout
	}

	return entities.Checkout{
		StoreID: storeID,
		Items:   fromStagedItems(staged.Items),
		Amount:  staged.Amount,
	}, nil
}

func (s *Store) ClearStaged(ctx context.Context, storeID string) error {
	if err := s.kv.Delete(ctx, checkoutKey(storeID)); err != nil {
		return fmt.Errorf("failed to clear staged checkout: %w", err)
	}
	return nil
}

// load normalizes anything unreadable to an empty cart. A broken stored
// value must never surface to the visitor.
func (s *Store) load(ctx context.Context, storeID string) (Cart, error) {
	data, err := s.kv.Get(ctx, cartKey(storeID))
	if errors.Is(err, cartkv.ErrNotFound) {
		return Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.logger.Debug("malformed cart, treating as empty",
			slog.String("store_id", storeID), slog.Any("error", err))
		return Cart{}, nil
	}

	// stored quantities below one are garbage, drop them
	for id, qty := range c {
		if qty < 1 {
			delete(c, id)
		}
	}
	return c, nil
}

// save deletes the key for an empty cart: "no cart" and "empty cart" are
// deliberately the same state.
func (s *Store) save(ctx context.Context, storeID string, c Cart) error {
	if len(c) == 0 {
		if err := s.kv.Delete(ctx, cartKey(storeID)); err != nil {
			return fmt.Errorf("failed to delete empty cart: %w", err)
		}
		s.notify(storeID)
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.kv.Set(ctx, cartKey(storeID), data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	s.notify(storeID)
	return nil
}

type stagedItem struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type stagedCheckout struct {
	Items  []stagedItem `json:"items"`
	Amount int          `json:"amount"`
}

func toStagedItems(items []entities.LineItem) []stagedItem {
	out := make([]stagedItem, 0, len(items))
	for _, it := range items {
		out = append(out, stagedItem(it))
	}
	return out
}

func fromStagedItems(items []stagedItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem(it))
	}
	return out
}
