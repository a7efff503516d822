package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
)

type StorageRepo struct {
	db db.DB
}

func NewStorageRepo(db db.DB) booking.StorageRepository {
	return &StorageRepo{db: db}
}

func (r *StorageRepo) Create(ctx context.Context, storage *repository.Storage) error {
	return r.db.ExecQueryRow(ctx, `
        INSERT INTO storages (number, city, address, feature, image)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, storage.Number, storage.City, storage.Address, storage.Feature, storage.Image).Scan(&storage.ID)
}

func (r *StorageRepo) GetByID(ctx context.Context, id int64) (*repository.Storage, error) {
	var storage repository.Storage
	err := r.db.Get(ctx, &storage, "SELECT * FROM storages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &storage, nil
}

func (r *StorageRepo) Update(ctx context.Context, storage *repository.Storage) error {
	_, err := r.db.Exec(ctx, `
        UPDATE storages
        SET
            number = $1,
            city = $2,
            address = $3,
            feature = $4,
            image = $5
        WHERE id = $6
    `, storage.Number, storage.City, storage.Address, storage.Feature, storage.Image, storage.ID)
	return err
}

func (r *StorageRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM storages WHERE id = $1", id)
	return err
}

func (r *StorageRepo) List(ctx context.Context) ([]*repository.Storage, error) {
	var storages []*repository.Storage
	err := r.db.Select(ctx, &storages, "SELECT * FROM storages ORDER BY number, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list storages: %w", err)
	}
	return storages, nil
}

// BoxStats runs the per-warehouse aggregate. An empty warehouse yields zero
// counts and a NULL min_price.
func (r *StorageRepo) BoxStats(ctx context.Context, storageID int64) (*repository.BoxStats, error) {
	var stats repository.BoxStats
	err := r.db.Get(ctx, &stats, `
        SELECT
            COUNT(*) AS count_boxes,
            COUNT(*) FILTER (WHERE NOT is_occupied) AS count_of_free_boxes,
            MIN(price) AS min_price
        FROM boxes
        WHERE storage_id = $1
    `, storageID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
