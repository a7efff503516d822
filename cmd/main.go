package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/selfstorage/backend/internal/booking"
	"github.com/selfstorage/backend/internal/cache"
	"github.com/selfstorage/backend/internal/db"
	"github.com/selfstorage/backend/internal/kafka"
	"github.com/selfstorage/backend/internal/logger"
	"github.com/selfstorage/backend/internal/repository/postgresql"
	"github.com/selfstorage/backend/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	database, err := db.NewDb(ctx)
	if err != nil {
		zapLogger.Fatal("database init error", zap.Error(err))
	}
	defer database.Close()

	db.InitAdmin(ctx, database)

	clientRepo := postgresql.NewClientRepo(database)
	storageRepo := postgresql.NewStorageRepo(database)
	boxRepo := postgresql.NewBoxRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	boxCache := cache.NewBoxCache(boxRepo, storageRepo)
	if err := boxCache.LoadInitialData(ctx); err != nil {
		zapLogger.Warn("failed to warm up box cache", zap.Error(err))
	}

	svc := booking.NewService(database, clientRepo, storageRepo, boxRepo, orderRepo, outboxRepo, boxCache, zapLogger)

	producer := newProducer()
	defer producer.Close()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})
	go publisher.Run(ctx)

	auditSink := server.NewOutboxAuditSink(database, outboxRepo)
	srv := server.New(svc, userRepo, auditSink)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	go func() {
		if err := srv.Run(ctx, port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	zapLogger.Info("server started", zap.String("port", port))

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	publisher.Shutdown()

	zapLogger.Info("server gracefully stopped")
}

// newProducer picks the Kafka producer when brokers are configured and falls
// back to stdout otherwise, so the service runs without a broker in local
// setups.
func newProducer() kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return kafka.NewConsoleProducer()
	}
	return kafka.NewKafkaProducer(strings.Split(brokers, ","))
}
