//go:generate mockgen -source ./service.go -destination=./mocks/service_mock.go -package=mock_booking
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/repository"
)

type ClientRepository interface {
	Create(ctx context.Context, client *repository.Client) error
	GetByUserID(ctx context.Context, userID int64) (*repository.Client, error)
	Update(ctx context.Context, client *repository.Client) error
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]*repository.Client, error)
}

type StorageRepository interface {
	Create(ctx context.Context, storage *repository.Storage) error
	GetByID(ctx context.Context, id int64) (*repository.Storage, error)
	Update(ctx context.Context, storage *repository.Storage) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*repository.Storage, error)
	BoxStats(ctx context.Context, storageID int64) (*repository.BoxStats, error)
}

type BoxRepository interface {
	Create(ctx context.Context, box *repository.Box) error
	GetByID(ctx context.Context, id int64) (*repository.Box, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Box, error)
	GetByStorageID(ctx context.Context, storageID int64) ([]*repository.Box, error)
	Update(ctx context.Context, box *repository.Box) error
	SetOccupiedTx(ctx context.Context, tx db.Tx, id int64, occupied bool) error
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error)
	GetByClientID(ctx context.Context, clientID int64, limit int) ([]*repository.Order, error)
	GetActiveByBoxID(ctx context.Context, boxID int64) (*repository.Order, error)
	SetBoxTx(ctx context.Context, tx db.Tx, orderID, boxID int64) error
	Update(ctx context.Context, order *repository.Order) error
	Delete(ctx context.Context, id int64) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// BoxCache is a read cache of boxes kept alongside the database; the
// transactional workflows always read the box row FOR UPDATE and only push
// fresh state into the cache afterwards.
type BoxCache interface {
	Get(boxID int64) (*repository.Box, bool)
	FreeByStorage(storageID int64) []*repository.Box
	Set(box *repository.Box)
	Delete(boxID int64)
}

// Service is the booking facade: entity CRUD, the box-stats annotation and
// the transactional rent/assign/release workflows.
type Service struct {
	db          db.DB
	clientRepo  ClientRepository
	storageRepo StorageRepository
	boxRepo     BoxRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxTaskRepository
	boxCache    BoxCache
	logger      *zap.Logger

	timeNow func() time.Time
}

func NewService(
	database db.DB,
	clientRepo ClientRepository,
	storageRepo StorageRepository,
	boxRepo BoxRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxTaskRepository,
	boxCache BoxCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		db:          database,
		clientRepo:  clientRepo,
		storageRepo: storageRepo,
		boxRepo:     boxRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		boxCache:    boxCache,
		logger:      logger,
		timeNow:     time.Now,
	}
}
