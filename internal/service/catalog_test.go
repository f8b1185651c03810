package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/internal/service"
	mocks "github.com/storekit/storefront-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogItems() []entities.CatalogItem {
	return []entities.CatalogItem{
		{StoreID: "s1", ItemID: "p1", Name: "Mug", Price: 500, Kind: entities.KindProduct, Active: true},
		{StoreID: "s1", ItemID: "svc1", Name: "Design", Price: 4000, Kind: entities.KindService, Active: true},
	}
}

func TestCatalogService_Snapshot(t *testing.T) {
	t.Run("cache miss loads from repo and stores snapshot", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		cache.EXPECT().Get("s1").Return(nil, false)
		repo.EXPECT().CatalogItems(mock.Anything, "s1").Return(catalogItems(), nil)
		cache.EXPECT().Set("s1", mock.Anything).Return()

		svc := service.NewCatalogService(testLogger(), repo, cache)

		snap, err := svc.Snapshot(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", snap.StoreID)
		assert.Len(t, snap.Items, 2)
		assert.False(t, snap.TakenAt.IsZero())
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		cached := entities.Snapshot{StoreID: "s1", Items: catalogItems(), TakenAt: time.Now()}
		data, err := cached.Marshal()
		require.NoError(t, err)

		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		cache.EXPECT().Get("s1").Return(data, true)

		svc := service.NewCatalogService(testLogger(), repo, cache)

		snap, err := svc.Snapshot(context.Background(), "s1")
		require.NoError(t, err)
		assert.Len(t, snap.Items, 2)
		repo.AssertNotCalled(t, "CatalogItems")
	})

	t.Run("undecodable cache entry evicted and repo consulted", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		cache.EXPECT().Get("s1").Return([]byte("not gob"), true)
		cache.EXPECT().Remove("s1").Return()
		repo.EXPECT().CatalogItems(mock.Anything, "s1").Return(catalogItems(), nil)
		cache.EXPECT().Set("s1", mock.Anything).Return()

		svc := service.NewCatalogService(testLogger(), repo, cache)

		snap, err := svc.Snapshot(context.Background(), "s1")
		require.NoError(t, err)
		assert.Len(t, snap.Items, 2)
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		cache.EXPECT().Get("s1").Return(nil, false)
		repo.EXPECT().CatalogItems(mock.Anything, "s1").Return(nil, errors.New("db error"))

		svc := service.NewCatalogService(testLogger(), repo, cache)

		_, err := svc.Snapshot(context.Background(), "s1")
		assert.Error(t, err)
	})
}

func TestCatalogService_Invalidation(t *testing.T) {
	t.Run("upsert invalidates the store snapshot", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		item := catalogItems()[0]
		repo.EXPECT().UpsertCatalogItem(mock.Anything, item).Return(nil)
		cache.EXPECT().Remove("s1").Return()

		svc := service.NewCatalogService(testLogger(), repo, cache)
		require.NoError(t, svc.UpsertItem(context.Background(), item))
	})

	t.Run("remove invalidates the store snapshot", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		repo.EXPECT().DeleteCatalogItem(mock.Anything, "s1", "p1").Return(nil)
		cache.EXPECT().Remove("s1").Return()

		svc := service.NewCatalogService(testLogger(), repo, cache)
		require.NoError(t, svc.RemoveItem(context.Background(), "s1", "p1"))
	})

	t.Run("failed upsert keeps the cache", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		item := catalogItems()[0]
		repo.EXPECT().UpsertCatalogItem(mock.Anything, item).Return(errors.New("db error"))

		svc := service.NewCatalogService(testLogger(), repo, cache)
		assert.Error(t, svc.UpsertItem(context.Background(), item))
		cache.AssertNotCalled(t, "Remove")
	})
}

func TestCatalogService_WarmUp(t *testing.T) {
	t.Run("preloads every active store", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		repo.EXPECT().ActiveStoreIDs(mock.Anything, 2).Return([]string{"s1", "s2"}, nil)
		for _, id := range []string{"s1", "s2"} {
			cache.EXPECT().Get(id).Return(nil, false)
			repo.EXPECT().CatalogItems(mock.Anything, id).Return(nil, nil)
			cache.EXPECT().Set(id, mock.Anything).Return()
		}

		svc := service.NewCatalogService(testLogger(), repo, cache)
		require.NoError(t, svc.WarmUp(context.Background(), 2))
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockSnapshotCache(t)

		svc := service.NewCatalogService(testLogger(), repo, cache)
		require.NoError(t, svc.WarmUp(context.Background(), 0))
		repo.AssertNotCalled(t, "ActiveStoreIDs")
	})
}
