package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/metrics"
	"github.com/selfstorage/backend/internal/repository"
)

// BookingEventsTopic carries the occupancy-transition events produced by the
// rent, assign and release workflows through the outbox.
const BookingEventsTopic = "booking_events"

// RentBox books a free box for a client in a single transaction: the box row
// is locked, checked, flipped to occupied and the order is created with a
// snapshot of the box price. The order price never changes afterwards, even
// when the box is repriced.
func (s *Service) RentBox(ctx context.Context, clientID, boxID int64, paidWith *time.Time, size *string) (*repository.Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	box, err := s.boxRepo.GetByIDTx(ctx, tx, boxID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("rent_box").Inc()
		return nil, fmt.Errorf("failed to get box: %w", err)
	}
	if box.IsOccupied {
		return nil, repository.ErrBoxOccupied
	}

	if err := s.boxRepo.SetOccupiedTx(ctx, tx, boxID, true); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("rent_box").Inc()
		return nil, fmt.Errorf("failed to occupy box: %w", err)
	}

	order := &repository.Order{
		ClientID:  clientID,
		BoxID:     &boxID,
		CreatedAt: s.timeNow().UTC(),
		PaidWith:  paidWith,
		Price:     box.Price,
		Size:      size,
	}
	if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("rent_box").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.enqueueBookingEvent(ctx, tx, "box_rented", order, &box.StorageID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	box.IsOccupied = true
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info("box rented",
		zap.Int64("order_id", order.ID),
		zap.Int64("client_id", clientID),
		zap.Int64("box_id", boxID),
		zap.Int("price", order.Price))

	return order, nil
}

// CreateOrder records a pending request with no box assigned yet. The agreed
// price has to be supplied by the caller since there is no box to snapshot.
func (s *Service) CreateOrder(ctx context.Context, clientID int64, price int, paidWith *time.Time, size *string) (*repository.Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order := &repository.Order{
		ClientID:  clientID,
		CreatedAt: s.timeNow().UTC(),
		PaidWith:  paidWith,
		Price:     price,
		Size:      size,
	}
	if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.enqueueBookingEvent(ctx, tx, "order_created", order, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	return order, nil
}

// AssignBox attaches a box to a pending order. The order's created_at and
// price are left untouched; only box_id and the box occupancy change.
func (s *Service) AssignBox(ctx context.Context, orderID, boxID int64) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_box").Inc()
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order.BoxID != nil {
		return repository.ErrOrderHasBox
	}

	box, err := s.boxRepo.GetByIDTx(ctx, tx, boxID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_box").Inc()
		return fmt.Errorf("failed to get box: %w", err)
	}
	if box.IsOccupied {
		return repository.ErrBoxOccupied
	}

	if err := s.orderRepo.SetBoxTx(ctx, tx, orderID, boxID); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_box").Inc()
		return fmt.Errorf("failed to assign box: %w", err)
	}
	if err := s.boxRepo.SetOccupiedTx(ctx, tx, boxID, true); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_box").Inc()
		return fmt.Errorf("failed to occupy box: %w", err)
	}

	order.BoxID = &boxID
	if err := s.enqueueBookingEvent(ctx, tx, "box_assigned", order, &box.StorageID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	box.IsOccupied = true
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	return nil
}

// ReleaseOrder ends the rental: the box is freed while the order stays as
// the historical record, still pointing at the box it occupied.
func (s *Service) ReleaseOrder(ctx context.Context, orderID int64) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("release_order").Inc()
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order.BoxID == nil {
		return repository.ErrOrderHasNoBox
	}

	box, err := s.boxRepo.GetByIDTx(ctx, tx, *order.BoxID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("release_order").Inc()
		return fmt.Errorf("failed to get box: %w", err)
	}

	if err := s.boxRepo.SetOccupiedTx(ctx, tx, box.ID, false); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("release_order").Inc()
		return fmt.Errorf("failed to free box: %w", err)
	}

	if err := s.enqueueBookingEvent(ctx, tx, "box_released", order, &box.StorageID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	box.IsOccupied = false
	if s.boxCache != nil {
		s.boxCache.Set(box)
	}
	metrics.BoxesReleasedTotal.Inc()
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*repository.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetClientOrders(ctx context.Context, clientID int64, limit int) ([]*repository.Order, error) {
	orders, err := s.orderRepo.GetByClientID(ctx, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get client orders: %w", err)
	}
	return orders, nil
}

func (s *Service) UpdateOrder(ctx context.Context, order *repository.Order) error {
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// DescribeOrder assembles the display label of an order together with its
// client, warehouse and box. Orders without a box render with those
// positions empty.
func (s *Service) DescribeOrder(ctx context.Context, orderID int64) (string, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return "", fmt.Errorf("order not found")
		}
		return "", fmt.Errorf("failed to get order: %w", err)
	}

	info := &repository.OrderInfo{Order: *order}

	client, err := s.clientRepo.GetByUserID(ctx, order.ClientID)
	if err != nil {
		return "", fmt.Errorf("failed to get client %d: %w", order.ClientID, err)
	}
	info.Client = client

	if order.BoxID != nil {
		box, err := s.boxRepo.GetByID(ctx, *order.BoxID)
		if err != nil {
			return "", fmt.Errorf("failed to get box %d: %w", *order.BoxID, err)
		}
		info.Box = box

		storage, err := s.storageRepo.GetByID(ctx, box.StorageID)
		if err != nil {
			return "", fmt.Errorf("failed to get storage %d: %w", box.StorageID, err)
		}
		info.Storage = storage
	}

	return info.String(), nil
}

func (s *Service) enqueueBookingEvent(ctx context.Context, tx db.Tx, event string, order *repository.Order, storageID *int64) error {
	payload := repository.BookingEventPayload{
		Timestamp: s.timeNow().UTC(),
		OrderID:   order.ID,
		ClientID:  order.ClientID,
		BoxID:     order.BoxID,
		StorageID: storageID,
		Event:     event,
		Price:     order.Price,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	task := &repository.OutboxTask{
		Payload: raw,
		Topic:   BookingEventsTopic,
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue booking event: %w", err)
	}
	return nil
}
