package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/selfstorage/backend/internal/repository"
)

func TestService_WithBoxStats(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches stats to every storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		minPrice := 80
		storages := []*repository.Storage{
			{ID: 1, Number: 1},
			{ID: 2, Number: 2},
		}

		m.storageRepo.EXPECT().BoxStats(gomock.Any(), int64(1)).
			Return(&repository.BoxStats{CountBoxes: 2, CountOfFreeBoxes: 1, MinPrice: &minPrice}, nil)
		m.storageRepo.EXPECT().BoxStats(gomock.Any(), int64(2)).
			Return(&repository.BoxStats{}, nil)

		err := svc.WithBoxStats(ctx, storages)
		require.NoError(t, err)

		assert.Equal(t, 2, storages[0].CountBoxes)
		assert.Equal(t, 1, storages[0].CountOfFreeBoxes)
		require.NotNil(t, storages[0].MinPrice)
		assert.Equal(t, 80, *storages[0].MinPrice)

		// a storage with no boxes has zero counts and no min price
		assert.Equal(t, 0, storages[1].CountBoxes)
		assert.Equal(t, 0, storages[1].CountOfFreeBoxes)
		assert.Nil(t, storages[1].MinPrice)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		expectedErr := errors.New("database error")
		storages := []*repository.Storage{{ID: 1}}

		m.storageRepo.EXPECT().BoxStats(gomock.Any(), int64(1)).Return(nil, expectedErr)

		err := svc.WithBoxStats(ctx, storages)
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestService(ctrl)

		err := svc.WithBoxStats(ctx, nil)
		assert.NoError(t, err)
	})
}

func TestService_ListStorages(t *testing.T) {
	ctx := context.Background()

	t.Run("with stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.storageRepo.EXPECT().List(gomock.Any()).
			Return([]*repository.Storage{{ID: 1, Number: 1}}, nil)
		m.storageRepo.EXPECT().BoxStats(gomock.Any(), int64(1)).
			Return(&repository.BoxStats{CountBoxes: 3, CountOfFreeBoxes: 3}, nil)

		storages, err := svc.ListStorages(ctx, true)
		require.NoError(t, err)
		require.Len(t, storages, 1)
		assert.Equal(t, 3, storages[0].CountBoxes)
	})

	t.Run("without stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		m.storageRepo.EXPECT().List(gomock.Any()).
			Return([]*repository.Storage{{ID: 1}}, nil)

		storages, err := svc.ListStorages(ctx, false)
		require.NoError(t, err)
		require.Len(t, storages, 1)
		assert.Zero(t, storages[0].CountBoxes)
	})
}

func TestService_StorageOf(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves storage through the box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)

		boxID := int64(7)
		order := &repository.Order{ID: 42, BoxID: &boxID}

		m.boxRepo.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&repository.Box{ID: 7, StorageID: 3}, nil)
		m.storageRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(&repository.Storage{ID: 3, Number: 12}, nil)

		storage, err := svc.StorageOf(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, int64(3), storage.ID)
	})

	t.Run("order has no box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestService(ctrl)

		storage, err := svc.StorageOf(ctx, &repository.Order{ID: 42})
		assert.ErrorIs(t, err, repository.ErrOrderHasNoBox)
		assert.Nil(t, storage)
	})
}
