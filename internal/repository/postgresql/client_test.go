package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/selfstorage/backend/internal/db/mocks"
	"github.com/selfstorage/backend/internal/repository"
	"github.com/selfstorage/backend/internal/repository/postgresql"
)

func TestClientRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		address := "Moscow, Lenina 1"
		phone := "+7 900 000-00-00"
		testClient := &repository.Client{
			UserID:      5,
			Address:     &address,
			PhoneNumber: &phone,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testClient.UserID),
			gomock.Eq(testClient.Address),
			gomock.Eq(testClient.PhoneNumber),
		).Return(nil, nil)

		err := repo.Create(ctx, testClient)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, &repository.Client{UserID: 5})
		assert.Equal(t, expectedErr, err)
	})
}

func TestClientRepo_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		testClient := &repository.Client{
			UserID:    5,
			UserName:  "Ivan",
			UserEmail: "ivan@example.com",
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(5))).
			DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
				// the derived user fields come from the users join
				assert.Contains(t, query, "JOIN users")
				*dest.(*repository.Client) = *testClient
				return nil
			})

		client, err := repo.GetByUserID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, testClient, client)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		client, err := repo.GetByUserID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, client)
	})
}

func TestClientRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		address := "Kazan"
		testClient := &repository.Client{UserID: 5, Address: &address}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testClient.Address),
			gomock.Nil(),
			gomock.Eq(testClient.UserID),
		).Return(nil, nil)

		err := repo.Update(ctx, testClient)
		assert.NoError(t, err)
	})
}

func TestClientRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]*repository.Client) = []*repository.Client{
					{UserID: 1, UserName: "Ivan"},
					{UserID: 2, UserName: "Petr"},
				}
				return nil
			})

		clients, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, clients, 2)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewClientRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.List(ctx)
		assert.Equal(t, expectedErr, err)
	})
}
