package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) booking.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	return tx.ExecQueryRow(ctx, `
        INSERT INTO orders (client_id, box_id, created_at, paid_with, price, size)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, order.ClientID, order.BoxID, order.CreatedAt, order.PaidWith, order.Price, order.Size).Scan(&order.ID)
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetActiveByBoxID finds the order currently holding a box. Released orders
// keep their box_id as history, so the join filters on the box still being
// occupied and takes the latest booking.
func (r *OrderRepo) GetActiveByBoxID(ctx context.Context, boxID int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, `
        SELECT o.* FROM orders o
        JOIN boxes b ON b.id = o.box_id
        WHERE o.box_id = $1 AND b.is_occupied
        ORDER BY o.created_at DESC
        LIMIT 1
    `, boxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByClientID(ctx context.Context, clientID int64, limit int) ([]*repository.Order, error) {
	query := "SELECT * FROM orders WHERE client_id = $1 ORDER BY created_at DESC"
	args := []interface{}{clientID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	return orders, err
}

func (r *OrderRepo) SetBoxTx(ctx context.Context, tx db.Tx, orderID, boxID int64) error {
	_, err := tx.Exec(ctx, "UPDATE orders SET box_id = $1 WHERE id = $2", boxID, orderID)
	return err
}

// Update touches the mutable fields only; created_at and price are set at
// creation and stay immutable.
func (r *OrderRepo) Update(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            paid_with = $1,
            size = $2
        WHERE id = $3
    `, order.PaidWith, order.Size, order.ID)
	return err
}

func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	return err
}
