package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfstorage/backend/internal/repository"
)

type fakeBoxRepo struct {
	byStorage map[int64][]*repository.Box
	err       error
}

func (f *fakeBoxRepo) GetByStorageID(_ context.Context, storageID int64) ([]*repository.Box, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byStorage[storageID], nil
}

type fakeStorageRepo struct {
	storages []*repository.Storage
	err      error
}

func (f *fakeStorageRepo) List(_ context.Context) ([]*repository.Storage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.storages, nil
}

func TestBoxCache_LoadInitialData(t *testing.T) {
	t.Run("loads boxes from every storage", func(t *testing.T) {
		boxRepo := &fakeBoxRepo{byStorage: map[int64][]*repository.Box{
			1: {{ID: 10, StorageID: 1}, {ID: 11, StorageID: 1, IsOccupied: true}},
			2: {{ID: 20, StorageID: 2}},
		}}
		storageRepo := &fakeStorageRepo{storages: []*repository.Storage{{ID: 1}, {ID: 2}}}

		c := NewBoxCache(boxRepo, storageRepo)
		require.NoError(t, c.LoadInitialData(context.Background()))

		_, found := c.Get(10)
		assert.True(t, found)
		_, found = c.Get(20)
		assert.True(t, found)
		_, found = c.Get(99)
		assert.False(t, found)
	})

	t.Run("storage list error", func(t *testing.T) {
		expectedErr := errors.New("database error")
		c := NewBoxCache(&fakeBoxRepo{}, &fakeStorageRepo{err: expectedErr})

		err := c.LoadInitialData(context.Background())
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestBoxCache_SetGet(t *testing.T) {
	c := NewBoxCache(&fakeBoxRepo{}, &fakeStorageRepo{})

	box := &repository.Box{ID: 7, StorageID: 3, Name: "A-1"}
	c.Set(box)

	// mutating the original must not leak into the cache
	box.Name = "changed"

	cached, found := c.Get(7)
	require.True(t, found)
	assert.Equal(t, "A-1", cached.Name)

	// mutating the returned copy must not leak back either
	cached.Name = "changed again"
	cached2, _ := c.Get(7)
	assert.Equal(t, "A-1", cached2.Name)
}

func TestBoxCache_Delete(t *testing.T) {
	c := NewBoxCache(&fakeBoxRepo{}, &fakeStorageRepo{})

	c.Set(&repository.Box{ID: 7})
	c.Delete(7)

	_, found := c.Get(7)
	assert.False(t, found)

	// deleting a missing box is a no-op
	c.Delete(99)
}

func TestBoxCache_FreeByStorage(t *testing.T) {
	c := NewBoxCache(&fakeBoxRepo{}, &fakeStorageRepo{})

	c.Set(&repository.Box{ID: 1, StorageID: 3})
	c.Set(&repository.Box{ID: 2, StorageID: 3, IsOccupied: true})
	c.Set(&repository.Box{ID: 3, StorageID: 4})

	free := c.FreeByStorage(3)
	require.Len(t, free, 1)
	assert.Equal(t, int64(1), free[0].ID)
}
