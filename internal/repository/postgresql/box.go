package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
)

type BoxRepo struct {
	db db.DB
}

func NewBoxRepo(db db.DB) booking.BoxRepository {
	return &BoxRepo{db: db}
}

func (r *BoxRepo) Create(ctx context.Context, box *repository.Box) error {
	return r.db.ExecQueryRow(ctx, `
        INSERT INTO boxes (storage_id, name, length, width, height, price, is_occupied)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, box.StorageID, box.Name, box.Length, box.Width, box.Height, box.Price, box.IsOccupied).Scan(&box.ID)
}

func (r *BoxRepo) GetByID(ctx context.Context, id int64) (*repository.Box, error) {
	var box repository.Box
	err := r.db.Get(ctx, &box, "SELECT * FROM boxes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Box, error) {
	var box repository.Box
	err := tx.Get(ctx, &box, "SELECT * FROM boxes WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepo) GetByStorageID(ctx context.Context, storageID int64) ([]*repository.Box, error) {
	var boxes []*repository.Box
	err := r.db.Select(ctx, &boxes, `
        SELECT * FROM boxes
        WHERE storage_id = $1
        ORDER BY name, id
    `, storageID)
	return boxes, err
}

func (r *BoxRepo) Update(ctx context.Context, box *repository.Box) error {
	_, err := r.db.Exec(ctx, `
        UPDATE boxes
        SET
            storage_id = $1,
            name = $2,
            length = $3,
            width = $4,
            height = $5,
            price = $6,
            is_occupied = $7
        WHERE id = $8
    `, box.StorageID, box.Name, box.Length, box.Width, box.Height, box.Price, box.IsOccupied, box.ID)
	return err
}

func (r *BoxRepo) SetOccupiedTx(ctx context.Context, tx db.Tx, id int64, occupied bool) error {
	_, err := tx.Exec(ctx, "UPDATE boxes SET is_occupied = $1 WHERE id = $2", occupied, id)
	return err
}

func (r *BoxRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM boxes WHERE id = $1", id)
	return err
}
