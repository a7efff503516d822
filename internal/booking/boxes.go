package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/selfstorage/backend/internal/repository"
)

func (s *Service) CreateBox(ctx context.Context, box *repository.Box) error {
	if err := s.boxRepo.Create(ctx, box); err != nil {
		return fmt.Errorf("failed to create box: %w", err)
	}
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	return nil
}

func (s *Service) GetBox(ctx context.Context, id int64) (*repository.Box, error) {
	if s.boxCache != nil {
		if box, found := s.boxCache.Get(id); found {
			return box, nil
		}
	}
	box, err := s.boxRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("box not found")
		}
		return nil, fmt.Errorf("failed to get box: %w", err)
	}
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	return box, nil
}

func (s *Service) ListBoxes(ctx context.Context, storageID int64) ([]*repository.Box, error) {
	boxes, err := s.boxRepo.GetByStorageID(ctx, storageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	return boxes, nil
}

// ListFreeBoxes serves availability display from the cache when it holds free
// boxes for the warehouse, falling back to the database otherwise.
func (s *Service) ListFreeBoxes(ctx context.Context, storageID int64) ([]*repository.Box, error) {
	if s.boxCache != nil {
		if free := s.boxCache.FreeByStorage(storageID); len(free) > 0 {
			return free, nil
		}
	}
	boxes, err := s.boxRepo.GetByStorageID(ctx, storageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	free := make([]*repository.Box, 0, len(boxes))
	for _, box := range boxes {
		if !box.IsOccupied {
			free = append(free, box)
		}
	}
	return free, nil
}

func (s *Service) UpdateBox(ctx context.Context, box *repository.Box) error {
	if err := s.boxRepo.Update(ctx, box); err != nil {
		return fmt.Errorf("failed to update box: %w", err)
	}
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	return nil
}

func (s *Service) DeleteBox(ctx context.Context, id int64) error {
	// An occupied box still backs a live booking; deleting it would cascade
	// the order away.
	if _, err := s.orderRepo.GetActiveByBoxID(ctx, id); err == nil {
		return repository.ErrBoxOccupied
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to check box orders: %w", err)
	}
	if err := s.boxRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete box: %w", err)
	}
	if s.boxCache != nil {
		s.boxCache.Delete(id)
	}
	return nil
}
