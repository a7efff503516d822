package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/selfstorage/backend/internal/repository"
)

type orderResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"client_id"`
	BoxID     *int64  `json:"box_id"`
	CreatedAt string  `json:"created_at"`
	PaidWith  *string `json:"paid_with"`
	Price     int     `json:"price"`
	Size      *string `json:"size"`
}

func toOrderResponse(order *repository.Order) orderResponse {
	resp := orderResponse{
		ID:        order.ID,
		ClientID:  order.ClientID,
		BoxID:     order.BoxID,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Price:     order.Price,
		Size:      order.Size,
	}
	if order.PaidWith != nil {
		paidWith := order.PaidWith.Format("2006-01-02")
		resp.PaidWith = &paidWith
	}
	return resp
}

func toOrderResponses(orders []*repository.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	return resp
}

func parsePaidWith(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	utc := date.UTC()
	return &utc, nil
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var orderRequest struct {
		ClientID int64   `json:"client_id"`
		BoxID    *int64  `json:"box_id"`
		Price    int     `json:"price"`
		PaidWith *string `json:"paid_with"`
		Size     *string `json:"size"`
	}

	if err := json.NewDecoder(r.Body).Decode(&orderRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if orderRequest.ClientID == 0 {
		respondError(w, http.StatusBadRequest, "Missing client_id")
		return
	}

	paidWith, err := parsePaidWith(orderRequest.PaidWith)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	var order *repository.Order
	if orderRequest.BoxID != nil {
		// Renting a concrete box: the order price is snapshotted from the
		// box, any supplied price is ignored.
		order, err = s.booking.RentBox(r.Context(), orderRequest.ClientID, *orderRequest.BoxID, paidWith, orderRequest.Size)
	} else {
		order, err = s.booking.CreateOrder(r.Context(), orderRequest.ClientID, orderRequest.Price, paidWith, orderRequest.Size)
	}
	if err != nil {
		if errors.Is(err, repository.ErrBoxOccupied) {
			respondError(w, http.StatusConflict, "Error: "+err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"id":      order.ID,
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.booking.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var updateRequest struct {
		PaidWith *string `json:"paid_with"`
		Size     *string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	paidWith, err := parsePaidWith(updateRequest.PaidWith)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	order, err := s.booking.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	order.PaidWith = paidWith
	order.Size = updateRequest.Size
	if err := s.booking.UpdateOrder(r.Context(), order); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order updated successfully",
	})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := s.booking.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

func (s *Server) handleAssignBox(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var assignRequest struct {
		BoxID int64 `json:"box_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&assignRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if assignRequest.BoxID == 0 {
		respondError(w, http.StatusBadRequest, "Missing box_id")
		return
	}

	if err := s.booking.AssignBox(r.Context(), id, assignRequest.BoxID); err != nil {
		switch {
		case errors.Is(err, repository.ErrBoxOccupied), errors.Is(err, repository.ErrOrderHasBox):
			respondError(w, http.StatusConflict, "Error: "+err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Box assigned successfully",
	})
}

func (s *Server) handleReleaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := s.booking.ReleaseOrder(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrOrderHasNoBox) {
			respondError(w, http.StatusConflict, "Error: "+err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order released successfully",
	})
}

// handleOrderStorage resolves the warehouse through the order's box. An
// order with no box is a well-defined absence, not an error: the response
// carries a null storage.
func (s *Server) handleOrderStorage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.booking.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	storage, err := s.booking.StorageOf(r.Context(), order)
	if err != nil {
		if errors.Is(err, repository.ErrOrderHasNoBox) {
			respondJSON(w, http.StatusOK, map[string]interface{}{"storage": nil})
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"storage": toStorageResponse(storage, false),
	})
}

func (s *Server) handleDescribeOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	label, err := s.booking.DescribeOrder(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"label": label})
}
