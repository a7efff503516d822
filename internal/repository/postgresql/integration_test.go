//go:build integration

package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
	"github.com/selfstorage/backend/internal/repository/postgresql"
)

func setupDB(t *testing.T) *db.Database {
	t.Helper()

	ctx := context.Background()
	database, err := db.NewDb(ctx)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	_, err = database.Exec(ctx, "TRUNCATE users, clients, storages, boxes, orders, outbox_tasks CASCADE")
	require.NoError(t, err)

	return database
}

func createOrder(t *testing.T, database *db.Database, order *repository.Order) {
	t.Helper()

	ctx := context.Background()
	orderRepo := postgresql.NewOrderRepo(database)

	tx, err := database.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, orderRepo.CreateTx(ctx, tx, order))
	require.NoError(t, tx.Commit(ctx))
}

func TestIntegrationClientLifecycle(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	userRepo := postgresql.NewUserRepo(database)
	clientRepo := postgresql.NewClientRepo(database)
	storageRepo := postgresql.NewStorageRepo(database)
	boxRepo := postgresql.NewBoxRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)

	userID, err := userRepo.CreateUser(ctx, "ivan", "secret", "ivan@example.com", "Ivan")
	require.NoError(t, err)

	address := "Moscow, Lenina 1"
	phone := "+7 900 000-00-00"
	require.NoError(t, clientRepo.Create(ctx, &repository.Client{
		UserID:      userID,
		Address:     &address,
		PhoneNumber: &phone,
	}))

	client, err := clientRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", client.UserName)
	assert.Equal(t, "ivan@example.com", client.UserEmail)
	assert.Equal(t, "Ivan: Moscow, Lenina 1, +7 900 000-00-00", client.String())

	storage := &repository.Storage{Number: 3, City: "Moscow", Address: "Lenina 2", Feature: "heated"}
	require.NoError(t, storageRepo.Create(ctx, storage))
	box := &repository.Box{StorageID: storage.ID, Name: "B-1", Length: 1, Width: 1, Height: 1, Price: 50, IsOccupied: true}
	require.NoError(t, boxRepo.Create(ctx, box))

	order := &repository.Order{ClientID: userID, BoxID: &box.ID, CreatedAt: time.Now().UTC(), Price: 50}
	createOrder(t, database, order)

	// deleting the account cascades through the profile down to its orders;
	// the rented box itself stays
	require.NoError(t, userRepo.Delete(ctx, userID))
	_, err = clientRepo.GetByUserID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	_, err = orderRepo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	_, err = boxRepo.GetByID(ctx, box.ID)
	assert.NoError(t, err)
}

func TestIntegrationBoxStatsAndCascade(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	userRepo := postgresql.NewUserRepo(database)
	clientRepo := postgresql.NewClientRepo(database)
	storageRepo := postgresql.NewStorageRepo(database)
	boxRepo := postgresql.NewBoxRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)

	storage := &repository.Storage{Number: 12, City: "Moscow", Address: "Pushkina 10", Feature: "24/7"}
	require.NoError(t, storageRepo.Create(ctx, storage))

	free := &repository.Box{StorageID: storage.ID, Name: "A-1", Length: 1.5, Width: 2, Height: 2.5, Price: 80}
	occupied := &repository.Box{StorageID: storage.ID, Name: "A-2", Length: 2, Width: 2, Height: 3, Price: 120, IsOccupied: true}
	require.NoError(t, boxRepo.Create(ctx, free))
	require.NoError(t, boxRepo.Create(ctx, occupied))

	stats, err := storageRepo.BoxStats(ctx, storage.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CountBoxes)
	assert.Equal(t, 1, stats.CountOfFreeBoxes)
	require.NotNil(t, stats.MinPrice)
	assert.Equal(t, 80, *stats.MinPrice)

	userID, err := userRepo.CreateUser(ctx, "renter", "secret", "renter@example.com", "Renter")
	require.NoError(t, err)
	require.NoError(t, clientRepo.Create(ctx, &repository.Client{UserID: userID}))

	order := &repository.Order{ClientID: userID, BoxID: &occupied.ID, CreatedAt: time.Now().UTC(), Price: 120}
	createOrder(t, database, order)

	// deleting the warehouse cascades to its boxes and on to their orders
	require.NoError(t, storageRepo.Delete(ctx, storage.ID))
	_, err = boxRepo.GetByID(ctx, free.ID)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	_, err = orderRepo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}

func TestIntegrationEmptyStorageStats(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	storageRepo := postgresql.NewStorageRepo(database)

	storage := &repository.Storage{Number: 1, City: "Kazan", Address: "Bauman 1"}
	require.NoError(t, storageRepo.Create(ctx, storage))

	stats, err := storageRepo.BoxStats(ctx, storage.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.CountBoxes)
	assert.Zero(t, stats.CountOfFreeBoxes)
	assert.Nil(t, stats.MinPrice)
}
