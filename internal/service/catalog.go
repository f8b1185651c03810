package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/pkg/utils"
)

type CatalogRepo interface {
	CatalogItems(ctx context.Context, storeID string) ([]entities.CatalogItem, error)
	UpsertCatalogItem(ctx context.Context, item entities.CatalogItem) error
	DeleteCatalogItem(ctx context.Context, storeID, itemID string) error
	ActiveStoreIDs(ctx context.Context, count int) ([]string, error)
}

type SnapshotCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  SnapshotCache
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, cache SnapshotCache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

// Snapshot returns the store's catalog, from cache when fresh enough.
func (s *catalogService) Snapshot(ctx context.Context, storeID string) (entities.Snapshot, error) {
	if data, ok := s.cache.Get(storeID); ok {
		var snap entities.Snapshot
		if err := snap.Unmarshal(data); err == nil {
			return snap, nil
		}
		// undecodable cache entry, fall through to the database
		s.cache.Remove(storeID)
	}

	var items []entities.CatalogItem
	fn := func() error {
		var err error
		items, err = s.repo.CatalogItems(ctx, storeID)
		return err
	}
	if err := utils.Retry(retryCfg, fn); err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	snap := entities.Snapshot{StoreID: storeID, Items: items, TakenAt: time.Now()}

	data, err := snap.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal snapshot", slog.String("store_id", storeID), slog.Any("error", err))
		return snap, nil
	}
	s.cache.Set(storeID, data)
	return snap, nil
}

func (s *catalogService) UpsertItem(ctx context.Context, item entities.CatalogItem) error {
	if err := s.repo.UpsertCatalogItem(ctx, item); err != nil {
		return err
	}
	s.cache.Remove(item.StoreID)
	s.logger.Debug("catalog item upserted",
		slog.String("store_id", item.StoreID), slog.String("item_id", item.ItemID))
	return nil
}

func (s *catalogService) RemoveItem(ctx context.Context, storeID, itemID string) error {
	if err := s.repo.DeleteCatalogItem(ctx, storeID, itemID); err != nil {
		return err
	}
	s.cache.Remove(storeID)
	s.logger.Debug("catalog item removed",
		slog.String("store_id", storeID), slog.String("item_id", itemID))
	return nil
}

const warmUpConcurrency = 4

// WarmUp preloads snapshots for the most recently active stores.
func (s *catalogService) WarmUp(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	ids, err := s.repo.ActiveStoreIDs(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to list active stores: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmUpConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			if _, err := s.Snapshot(ctx, id); err != nil {
				return fmt.Errorf("failed to warm up store %s: %w", id, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("catalog cache warmed up", slog.Int("stores", len(ids)))
	return nil
}
