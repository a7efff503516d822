package cache

import (
	"context"
	"log"
	"sync"

	"github.com/selfstorage/backend/internal/metrics"
	"github.com/selfstorage/backend/internal/repository"
)

type BoxRepository interface {
	GetByStorageID(ctx context.Context, storageID int64) ([]*repository.Box, error)
}

type StorageRepository interface {
	List(ctx context.Context) ([]*repository.Storage, error)
}

// BoxCache keeps a read copy of every box for availability display. Values
// are copied on the way in and out so callers never share memory with the
// cache.
type BoxCache struct {
	mu    sync.RWMutex
	cache map[int64]*repository.Box

	boxRepo     BoxRepository
	storageRepo StorageRepository
}

func NewBoxCache(boxRepo BoxRepository, storageRepo StorageRepository) *BoxCache {
	return &BoxCache{
		cache:       make(map[int64]*repository.Box),
		boxRepo:     boxRepo,
		storageRepo: storageRepo,
	}
}

func (c *BoxCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading initial data into box cache...")
	storages, err := c.storageRepo.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, storage := range storages {
		boxes, err := c.boxRepo.GetByStorageID(ctx, storage.ID)
		if err != nil {
			return err
		}
		for _, box := range boxes {
			boxCopy := *box
			c.cache[box.ID] = &boxCopy
		}
	}
	metrics.BoxCacheItems.Set(float64(len(c.cache)))
	log.Printf("Successfully loaded %d boxes into cache.", len(c.cache))
	return nil
}

func (c *BoxCache) Get(boxID int64) (*repository.Box, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	box, found := c.cache[boxID]
	if !found {
		return nil, false
	}
	boxCopy := *box
	return &boxCopy, true
}

// FreeByStorage returns the cached free boxes of one warehouse.
func (c *BoxCache) FreeByStorage(storageID int64) []*repository.Box {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var free []*repository.Box
	for _, box := range c.cache {
		if box.StorageID == storageID && !box.IsOccupied {
			boxCopy := *box
			free = append(free, &boxCopy)
		}
	}
	return free
}

func (c *BoxCache) Set(box *repository.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()
	boxCopy := *box
	c.cache[box.ID] = &boxCopy
	metrics.BoxCacheItems.Set(float64(len(c.cache)))
}

func (c *BoxCache) Delete(boxID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[boxID]; found {
		delete(c.cache, boxID)
		metrics.BoxCacheItems.Set(float64(len(c.cache)))
	}
}
