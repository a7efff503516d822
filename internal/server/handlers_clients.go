package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/selfstorage/backend/internal/repository"
)

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

type clientRequest struct {
	UserID      int64   `json:"user_id"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

type clientResponse struct {
	UserID      int64   `json:"user_id"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	Label       string  `json:"label"`
}

func toClientResponse(client *repository.Client) clientResponse {
	return clientResponse{
		UserID:      client.UserID,
		Address:     client.Address,
		PhoneNumber: client.PhoneNumber,
		UserName:    client.UserName,
		UserEmail:   client.UserEmail,
		Label:       client.String(),
	}
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	client := &repository.Client{
		UserID:      req.UserID,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.booking.CreateClient(r.Context(), client); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Client created successfully",
		"user_id": client.UserID,
	})
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	client, err := s.booking.GetClient(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toClientResponse(client))
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client := &repository.Client{
		UserID:      userID,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.booking.UpdateClient(r.Context(), client); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Client updated successfully",
	})
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := s.booking.DeleteClient(r.Context(), userID); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Client deleted successfully",
	})
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.booking.ListClients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	resp := make([]clientResponse, len(clients))
	for i, client := range clients {
		resp[i] = toClientResponse(client)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListClientOrders(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	limit := 0
	if lastN := r.URL.Query().Get("last"); lastN != "" {
		limit, err = strconv.Atoi(lastN)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "Invalid last parameter")
			return
		}
	}

	orders, err := s.booking.GetClientOrders(r.Context(), clientID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponses(orders))
}
