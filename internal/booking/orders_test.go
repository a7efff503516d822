package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_booking "github.com/selfstorage/backend/internal/booking/mocks"
	"github.com/selfstorage/backend/internal/db"
	mock_database "github.com/selfstorage/backend/internal/db/mocks"
	"github.com/selfstorage/backend/internal/repository"
)

type serviceMocks struct {
	db          *mock_database.MockDB
	tx          *mock_database.MockTx
	clientRepo  *mock_booking.MockClientRepository
	storageRepo *mock_booking.MockStorageRepository
	boxRepo     *mock_booking.MockBoxRepository
	orderRepo   *mock_booking.MockOrderRepository
	outboxRepo  *mock_booking.MockOutboxTaskRepository
	boxCache    *mock_booking.MockBoxCache
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		db:          mock_database.NewMockDB(ctrl),
		tx:          mock_database.NewMockTx(ctrl),
		clientRepo:  mock_booking.NewMockClientRepository(ctrl),
		storageRepo: mock_booking.NewMockStorageRepository(ctrl),
		boxRepo:     mock_booking.NewMockBoxRepository(ctrl),
		orderRepo:   mock_booking.NewMockOrderRepository(ctrl),
		outboxRepo:  mock_booking.NewMockOutboxTaskRepository(ctrl),
		boxCache:    mock_booking.NewMockBoxCache(ctrl),
	}

	svc := NewService(m.db, m.clientRepo, m.storageRepo, m.boxRepo, m.orderRepo, m.outboxRepo, m.boxCache, zap.NewNop())
	svc.timeNow = func() time.Time {
		return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, m
}

func TestService_RentBox(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		box := &repository.Box{ID: 7, StorageID: 3, Name: "A-1", Price: 100}

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).Return(box, nil)
		m.boxRepo.EXPECT().SetOccupiedTx(gomock.Any(), m.tx, int64(7), true).Return(nil)
		m.orderRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, order *repository.Order) error {
				order.ID = 42
				return nil
			})
		m.outboxRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Equal(t, BookingEventsTopic, task.Topic)

				var payload repository.BookingEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "box_rented", payload.Event)
				assert.Equal(t, int64(42), payload.OrderID)
				assert.Equal(t, 100, payload.Price)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx is closed"))
		m.boxCache.EXPECT().Set(gomock.Any()).Do(func(cached *repository.Box) {
			assert.True(t, cached.IsOccupied)
		})

		order, err := svc.RentBox(ctx, 5, 7, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, int64(5), order.ClientID)
		require.NotNil(t, order.BoxID)
		assert.Equal(t, int64(7), *order.BoxID)
		// price is snapshotted from the box at rent time
		assert.Equal(t, 100, order.Price)
		assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), order.CreatedAt)
	})

	t.Run("box occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).
			Return(&repository.Box{ID: 7, IsOccupied: true}, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		order, err := svc.RentBox(ctx, 5, 7, nil, nil)
		assert.ErrorIs(t, err, repository.ErrBoxOccupied)
		assert.Nil(t, order)
	})

	t.Run("box not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).
			Return(nil, repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		order, err := svc.RentBox(ctx, 5, 7, nil, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, order)
	})
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, order *repository.Order) error {
				order.ID = 1
				return nil
			})
		m.outboxRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				var payload repository.BookingEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "order_created", payload.Event)
				assert.Nil(t, payload.BoxID)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx is closed"))

		order, err := svc.CreateOrder(ctx, 5, 250, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, order.BoxID)
		assert.Equal(t, 250, order.Price)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		expectedErr := errors.New("database error")
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(expectedErr)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		order, err := svc.CreateOrder(ctx, 5, 250, nil, nil)
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, order)
	})
}

func TestService_AssignBox(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		order := &repository.Order{ID: 42, ClientID: 5, CreatedAt: created, Price: 250}

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(42)).Return(order, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).
			Return(&repository.Box{ID: 7, StorageID: 3, Price: 999}, nil)
		m.orderRepo.EXPECT().SetBoxTx(gomock.Any(), m.tx, int64(42), int64(7)).Return(nil)
		m.boxRepo.EXPECT().SetOccupiedTx(gomock.Any(), m.tx, int64(7), true).Return(nil)
		m.outboxRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				var payload repository.BookingEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "box_assigned", payload.Event)
				// assignment keeps the snapshot price, not the box price
				assert.Equal(t, 250, payload.Price)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx is closed"))
		m.boxCache.EXPECT().Set(gomock.Any())

		err := svc.AssignBox(ctx, 42, 7)
		require.NoError(t, err)
		assert.Equal(t, created, order.CreatedAt)
		assert.Equal(t, 250, order.Price)
	})

	t.Run("order already has box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		boxID := int64(9)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(42)).
			Return(&repository.Order{ID: 42, BoxID: &boxID}, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := svc.AssignBox(ctx, 42, 7)
		assert.ErrorIs(t, err, repository.ErrOrderHasBox)
	})

	t.Run("box occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(42)).
			Return(&repository.Order{ID: 42}, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).
			Return(&repository.Box{ID: 7, IsOccupied: true}, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := svc.AssignBox(ctx, 42, 7)
		assert.ErrorIs(t, err, repository.ErrBoxOccupied)
	})
}

func TestService_ReleaseOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		boxID := int64(7)
		order := &repository.Order{ID: 42, ClientID: 5, BoxID: &boxID, Price: 100}

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(42)).Return(order, nil)
		m.boxRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).
			Return(&repository.Box{ID: 7, StorageID: 3, IsOccupied: true}, nil)
		m.boxRepo.EXPECT().SetOccupiedTx(gomock.Any(), m.tx, int64(7), false).Return(nil)
		m.outboxRepo.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				var payload repository.BookingEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "box_released", payload.Event)
				require.NotNil(t, payload.BoxID)
				assert.Equal(t, int64(7), *payload.BoxID)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx is closed"))
		m.boxCache.EXPECT().Set(gomock.Any()).Do(func(cached *repository.Box) {
			assert.False(t, cached.IsOccupied)
		})

		err := svc.ReleaseOrder(ctx, 42)
		require.NoError(t, err)
		// the order keeps its box reference as a historical record
		assert.NotNil(t, order.BoxID)
	})

	t.Run("order has no box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orderRepo.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(42)).
			Return(&repository.Order{ID: 42}, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := svc.ReleaseOrder(ctx, 42)
		assert.ErrorIs(t, err, repository.ErrOrderHasNoBox)
	})
}

func TestService_DescribeOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("order with box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		boxID := int64(7)
		address := "Moscow"
		phone := "+7 900"

		m.orderRepo.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(&repository.Order{ID: 42, ClientID: 5, BoxID: &boxID}, nil)
		m.clientRepo.EXPECT().GetByUserID(gomock.Any(), int64(5)).
			Return(&repository.Client{UserID: 5, UserName: "Ivan", Address: &address, PhoneNumber: &phone}, nil)
		m.boxRepo.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&repository.Box{ID: 7, StorageID: 3, Name: "A-1", Length: 1.5, Width: 2, Height: 2.5}, nil)
		m.storageRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(&repository.Storage{ID: 3, Number: 12, Address: "Pushkina 10"}, nil)

		label, err := svc.DescribeOrder(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "#42 Ivan: Moscow, +7 900 12 Pushkina 10 A-1(1.5x2x2.5 м)", label)
	})

	t.Run("order without box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(&repository.Order{ID: 42, ClientID: 5}, nil)
		m.clientRepo.EXPECT().GetByUserID(gomock.Any(), int64(5)).
			Return(&repository.Client{UserID: 5, UserName: "Ivan"}, nil)

		label, err := svc.DescribeOrder(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "#42 Ivan: ,   ", label)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(nil, repository.ErrObjectNotFound)

		_, err := svc.DescribeOrder(ctx, 42)
		assert.EqualError(t, err, "order not found")
	})
}
