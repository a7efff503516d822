package server

import (
	"encoding/json"
	"net/http"

	"github.com/selfstorage/backend/internal/repository"
)

type storageRequest struct {
	Number  int    `json:"number"`
	City    string `json:"city"`
	Address string `json:"address"`
	Feature string `json:"feature"`
	Image   string `json:"image"`
}

type storageResponse struct {
	ID      int64  `json:"id"`
	Number  int    `json:"number"`
	City    string `json:"city"`
	Address string `json:"address"`
	Feature string `json:"feature"`
	Image   string `json:"image,omitempty"`
	Label   string `json:"label"`

	CountBoxes       *int `json:"count_boxes,omitempty"`
	CountOfFreeBoxes *int `json:"count_of_free_boxes,omitempty"`
	MinPrice         *int `json:"min_price,omitempty"`
}

func toStorageResponse(storage *repository.Storage, withStats bool) storageResponse {
	resp := storageResponse{
		ID:      storage.ID,
		Number:  storage.Number,
		City:    storage.City,
		Address: storage.Address,
		Feature: storage.Feature,
		Image:   storage.Image,
		Label:   storage.String(),
	}
	if withStats {
		countBoxes := storage.CountBoxes
		countFree := storage.CountOfFreeBoxes
		resp.CountBoxes = &countBoxes
		resp.CountOfFreeBoxes = &countFree
		resp.MinPrice = storage.MinPrice
	}
	return resp
}

func (s *Server) handleCreateStorage(w http.ResponseWriter, r *http.Request) {
	var req storageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Address == "" || req.Feature == "" {
		respondError(w, http.StatusBadRequest, "Missing address or feature")
		return
	}

	storage := &repository.Storage{
		Number:  req.Number,
		City:    req.City,
		Address: req.Address,
		Feature: req.Feature,
		Image:   req.Image,
	}
	if err := s.booking.CreateStorage(r.Context(), storage); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Storage created successfully",
		"id":      storage.ID,
	})
}

func (s *Server) handleGetStorage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid storage ID")
		return
	}

	storage, err := s.booking.GetStorage(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toStorageResponse(storage, false))
}

func (s *Server) handleUpdateStorage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid storage ID")
		return
	}

	var req storageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	storage := &repository.Storage{
		ID:      id,
		Number:  req.Number,
		City:    req.City,
		Address: req.Address,
		Feature: req.Feature,
		Image:   req.Image,
	}
	if err := s.booking.UpdateStorage(r.Context(), storage); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Storage updated successfully",
	})
}

func (s *Server) handleDeleteStorage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid storage ID")
		return
	}

	if err := s.booking.DeleteStorage(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Storage deleted successfully",
	})
}

func (s *Server) handleListStorages(w http.ResponseWriter, r *http.Request) {
	withStats := r.URL.Query().Get("with_stats") == "true"

	storages, err := s.booking.ListStorages(r.Context(), withStats)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	resp := make([]storageResponse, len(storages))
	for i, storage := range storages {
		resp[i] = toStorageResponse(storage, withStats)
	}
	respondJSON(w, http.StatusOK, resp)
}
