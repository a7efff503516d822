package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
)

// clientColumns joins users so every read carries the derived user_name and
// user_email fields.
const clientColumns = `
        c.user_id, c.address, c.phone_number,
        u.first_name AS user_name, u.email AS user_email
`

type ClientRepo struct {
	db db.DB
}

func NewClientRepo(db db.DB) booking.ClientRepository {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, client *repository.Client) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO clients (user_id, address, phone_number)
        VALUES ($1, $2, $3)
    `, client.UserID, client.Address, client.PhoneNumber)
	return err
}

func (r *ClientRepo) GetByUserID(ctx context.Context, userID int64) (*repository.Client, error) {
	var client repository.Client
	err := r.db.Get(ctx, &client, `
        SELECT `+clientColumns+`
        FROM clients c
        JOIN users u ON u.id = c.user_id
        WHERE c.user_id = $1
    `, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepo) Update(ctx context.Context, client *repository.Client) error {
	_, err := r.db.Exec(ctx, `
        UPDATE clients
        SET
            address = $1,
            phone_number = $2
        WHERE user_id = $3
    `, client.Address, client.PhoneNumber, client.UserID)
	return err
}

func (r *ClientRepo) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM clients WHERE user_id = $1", userID)
	return err
}

func (r *ClientRepo) List(ctx context.Context) ([]*repository.Client, error) {
	var clients []*repository.Client
	err := r.db.Select(ctx, &clients, `
        SELECT `+clientColumns+`
        FROM clients c
        JOIN users u ON u.id = c.user_id
        ORDER BY c.user_id
    `)
	return clients, err
}
