package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/metrics"
	"github.com/selfstorage/backend/internal/repository"
)

const AuditLogsTopic = "audit_logs"

// AuditSink receives finished audit batches from the manager's workers.
type AuditSink interface {
	Publish(ctx context.Context, batch []AuditLogEntry) error
}

// OutboxAuditSink persists audit batches as outbox tasks, one task per
// entry, inside a single transaction. The relay picks them up and publishes
// them to Kafka alongside the booking events.
type OutboxAuditSink struct {
	db         db.DB
	outboxRepo booking.OutboxTaskRepository
}

func NewOutboxAuditSink(database db.DB, outboxRepo booking.OutboxTaskRepository) *OutboxAuditSink {
	return &OutboxAuditSink{db: database, outboxRepo: outboxRepo}
}

func (s *OutboxAuditSink) Publish(ctx context.Context, batch []AuditLogEntry) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, entry := range batch {
		payload, err := json.Marshal(toAuditPayload(entry))
		if err != nil {
			return fmt.Errorf("failed to marshal audit payload: %w", err)
		}

		task := &repository.OutboxTask{
			Status:  repository.TaskStatusCreated,
			Payload: payload,
			Topic:   AuditLogsTopic,
		}
		if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
			return fmt.Errorf("failed to create outbox task: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.AuditEntriesPublishedTotal.Add(float64(len(batch)))
	return nil
}

func toAuditPayload(entry AuditLogEntry) repository.AuditLogPayload {
	payload := repository.AuditLogPayload{
		Timestamp:  entry.Timestamp,
		UserID:     entry.UserID,
		Method:     entry.Method,
		Path:       entry.Path,
		Handler:    entry.Handler,
		StatusCode: entry.StatusCode,
		Request:    entry.Request,
		Response:   entry.Response,
		Action:     actionFromMethod(entry.Method),
	}
	payload.EntityType, payload.EntityID = entityFromPath(entry.Path)
	return payload
}

func actionFromMethod(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

// entityFromPath extracts the primary entity of a request path, e.g.
// /orders/42/assign -> ("order", "42"), /storages/3/boxes -> ("storage", "3").
func entityFromPath(path string) (string, string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 {
		return "", ""
	}

	entity := strings.TrimSuffix(parts[0], "s")

	var id string
	if len(parts) > 1 {
		id = parts[1]
	}
	return entity, id
}

// ConsoleAuditSink prints audit batches to stdout. Used when no database is
// wired, mainly in local runs and tests.
type ConsoleAuditSink struct{}

func (ConsoleAuditSink) Publish(_ context.Context, batch []AuditLogEntry) error {
	fmt.Printf("\n=== AUDIT BATCH ===\n")
	for _, entry := range batch {
		entryJSON, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		fmt.Println(string(entryJSON))
	}
	fmt.Println("=== END BATCH ===")

	metrics.AuditEntriesPublishedTotal.Add(float64(len(batch)))
	return nil
}
