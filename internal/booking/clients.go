package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/selfstorage/backend/internal/repository"
)

func (s *Service) CreateClient(ctx context.Context, client *repository.Client) error {
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetClient returns the client profile with the derived user fields
// (user_name, user_email) filled from the joined account row.
func (s *Service) GetClient(ctx context.Context, userID int64) (*repository.Client, error) {
	client, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, client *repository.Client) error {
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (s *Service) DeleteClient(ctx context.Context, userID int64) error {
	if err := s.clientRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *Service) ListClients(ctx context.Context) ([]*repository.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
