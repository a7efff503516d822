//go:generate mockgen -source ./server.go -destination=./mocks/server_mock.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/selfstorage/backend/internal/repository"
)

// Booking is the slice of the booking service the HTTP layer depends on.
type Booking interface {
	CreateClient(ctx context.Context, client *repository.Client) error
	GetClient(ctx context.Context, userID int64) (*repository.Client, error)
	UpdateClient(ctx context.Context, client *repository.Client) error
	DeleteClient(ctx context.Context, userID int64) error
	ListClients(ctx context.Context) ([]*repository.Client, error)

	CreateStorage(ctx context.Context, storage *repository.Storage) error
	GetStorage(ctx context.Context, id int64) (*repository.Storage, error)
	UpdateStorage(ctx context.Context, storage *repository.Storage) error
	DeleteStorage(ctx context.Context, id int64) error
	ListStorages(ctx context.Context, withStats bool) ([]*repository.Storage, error)

	CreateBox(ctx context.Context, box *repository.Box) error
	GetBox(ctx context.Context, id int64) (*repository.Box, error)
	ListBoxes(ctx context.Context, storageID int64) ([]*repository.Box, error)
	ListFreeBoxes(ctx context.Context, storageID int64) ([]*repository.Box, error)
	UpdateBox(ctx context.Context, box *repository.Box) error
	DeleteBox(ctx context.Context, id int64) error

	RentBox(ctx context.Context, clientID, boxID int64, paidWith *time.Time, size *string) (*repository.Order, error)
	CreateOrder(ctx context.Context, clientID int64, price int, paidWith *time.Time, size *string) (*repository.Order, error)
	AssignBox(ctx context.Context, orderID, boxID int64) error
	ReleaseOrder(ctx context.Context, orderID int64) error
	GetOrder(ctx context.Context, id int64) (*repository.Order, error)
	GetClientOrders(ctx context.Context, clientID int64, limit int) ([]*repository.Order, error)
	UpdateOrder(ctx context.Context, order *repository.Order) error
	DeleteOrder(ctx context.Context, id int64) error
	StorageOf(ctx context.Context, order *repository.Order) (*repository.Storage, error)
	DescribeOrder(ctx context.Context, orderID int64) (string, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	booking      Booking
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
}

func New(booking Booking, userRepo UserRepo, auditSink AuditSink) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, auditSink)
	return &Server{
		booking:      booking,
		userRepo:     userRepo,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown()

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/clients", s.handleCreateClient).Methods(http.MethodPost)
	api.HandleFunc("/clients", s.handleListClients).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id:[0-9]+}", s.handleGetClient).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id:[0-9]+}", s.handleUpdateClient).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id:[0-9]+}", s.handleDeleteClient).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id:[0-9]+}/orders", s.handleListClientOrders).Methods(http.MethodGet)

	api.HandleFunc("/storages", s.handleCreateStorage).Methods(http.MethodPost)
	api.HandleFunc("/storages", s.handleListStorages).Methods(http.MethodGet)
	api.HandleFunc("/storages/{id:[0-9]+}", s.handleGetStorage).Methods(http.MethodGet)
	api.HandleFunc("/storages/{id:[0-9]+}", s.handleUpdateStorage).Methods(http.MethodPut)
	api.HandleFunc("/storages/{id:[0-9]+}", s.handleDeleteStorage).Methods(http.MethodDelete)
	api.HandleFunc("/storages/{id:[0-9]+}/boxes", s.handleListBoxes).Methods(http.MethodGet)
	api.HandleFunc("/storages/{id:[0-9]+}/boxes", s.handleCreateBox).Methods(http.MethodPost)

	api.HandleFunc("/boxes/{id:[0-9]+}", s.handleGetBox).Methods(http.MethodGet)
	api.HandleFunc("/boxes/{id:[0-9]+}", s.handleUpdateBox).Methods(http.MethodPut)
	api.HandleFunc("/boxes/{id:[0-9]+}", s.handleDeleteBox).Methods(http.MethodDelete)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", s.handleUpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id:[0-9]+}", s.handleDeleteOrder).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id:[0-9]+}/assign", s.handleAssignBox).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/release", s.handleReleaseOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/storage", s.handleOrderStorage).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}/describe", s.handleDescribeOrder).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
