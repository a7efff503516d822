package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/selfstorage/backend/internal/db/mocks"
	"github.com/selfstorage/backend/internal/repository"
	"github.com/selfstorage/backend/internal/repository/postgresql"
)

func TestOutboxTaskRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id and created status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		task := &repository.OutboxTask{
			Payload: json.RawMessage(`{"event":"box_rented"}`),
			Topic:   "booking_events",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Eq(task.Payload),
			gomock.Eq("booking_events"),
			gomock.Any(),
			gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.CreateTx(ctx, mockTx, task)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag(nil), expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.OutboxTask{Topic: "booking_events"})
		assert.ErrorContains(t, err, "failed to insert outbox task")
	})
}

func TestOutboxTaskRepo_GetProcessableTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		taskID := uuid.New()
		mockDB.EXPECT().Select(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Eq(repository.TaskStatusFailed),
			gomock.Any(),
			gomock.Eq(10),
		).DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "FOR UPDATE SKIP LOCKED")
			*dest.(*[]*repository.OutboxTask) = []*repository.OutboxTask{{ID: taskID}}
			return nil
		})

		tasks, err := repo.GetProcessableTasks(ctx, mockDB, 10)
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.Equal(t, taskID, tasks[0].ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		tasks, err := repo.GetProcessableTasks(ctx, mockDB, 10)
		assert.ErrorContains(t, err, "failed to get processable outbox tasks")
		assert.Nil(t, tasks)
	})
}
