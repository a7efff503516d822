package booking

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/selfstorage/backend/internal/repository"
)

// Aggregate queries for different warehouses are independent, so the
// annotation fans out over the pool with a bounded number of goroutines.
const boxStatsConcurrency = 8

func (s *Service) CreateStorage(ctx context.Context, storage *repository.Storage) error {
	if err := s.storageRepo.Create(ctx, storage); err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	return nil
}

func (s *Service) GetStorage(ctx context.Context, id int64) (*repository.Storage, error) {
	storage, err := s.storageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("storage not found")
		}
		return nil, fmt.Errorf("failed to get storage: %w", err)
	}
	return storage, nil
}

func (s *Service) UpdateStorage(ctx context.Context, storage *repository.Storage) error {
	if err := s.storageRepo.Update(ctx, storage); err != nil {
		return fmt.Errorf("failed to update storage: %w", err)
	}
	return nil
}

// DeleteStorage removes the warehouse; the database cascades the delete to
// its boxes and to the orders referencing those boxes.
func (s *Service) DeleteStorage(ctx context.Context, id int64) error {
	if err := s.storageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete storage: %w", err)
	}
	return nil
}

// ListStorages returns all warehouses, annotated with box stats when
// withStats is set.
func (s *Service) ListStorages(ctx context.Context, withStats bool) ([]*repository.Storage, error) {
	storages, err := s.storageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list storages: %w", err)
	}
	if withStats {
		if err := s.WithBoxStats(ctx, storages); err != nil {
			return nil, err
		}
	}
	return storages, nil
}

// WithBoxStats attaches count_boxes, count_of_free_boxes and min_price to
// every storage in the collection. The values live only on the in-memory
// records; nothing is written back. MinPrice stays nil for warehouses
// without boxes.
func (s *Service) WithBoxStats(ctx context.Context, storages []*repository.Storage) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(boxStatsConcurrency)

	for _, storage := range storages {
		storage := storage
		g.Go(func() error {
			stats, err := s.storageRepo.BoxStats(ctx, storage.ID)
			if err != nil {
				return fmt.Errorf("failed to get box stats for storage %d: %w", storage.ID, err)
			}
			storage.CountBoxes = stats.CountBoxes
			storage.CountOfFreeBoxes = stats.CountOfFreeBoxes
			storage.MinPrice = stats.MinPrice
			return nil
		})
	}

	return g.Wait()
}

// StorageOf resolves the warehouse an order's box belongs to. Orders without
// an assigned box yield repository.ErrOrderHasNoBox.
func (s *Service) StorageOf(ctx context.Context, order *repository.Order) (*repository.Storage, error) {
	if order.BoxID == nil {
		return nil, repository.ErrOrderHasNoBox
	}

	box, err := s.boxRepo.GetByID(ctx, *order.BoxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get box %d: %w", *order.BoxID, err)
	}

	storage, err := s.storageRepo.GetByID(ctx, box.StorageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage %d: %w", box.StorageID, err)
	}
	return storage, nil
}
