package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/selfstorage/backend/internal/repository"
)

type boxRequest struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Price  int     `json:"price"`
}

type boxResponse struct {
	ID         int64   `json:"id"`
	StorageID  int64   `json:"storage_id"`
	Name       string  `json:"name"`
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Price      int     `json:"price"`
	IsOccupied bool    `json:"is_occupied"`
	Label      string  `json:"label"`
}

func toBoxResponse(box *repository.Box) boxResponse {
	return boxResponse{
		ID:         box.ID,
		StorageID:  box.StorageID,
		Name:       box.Name,
		Length:     box.Length,
		Width:      box.Width,
		Height:     box.Height,
		Price:      box.Price,
		IsOccupied: box.IsOccupied,
		Label:      box.String(),
	}
}

func (s *Server) handleCreateBox(w http.ResponseWriter, r *http.Request) {
	storageID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid storage ID")
		return
	}

	var req boxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Missing box name")
		return
	}

	box := &repository.Box{
		StorageID: storageID,
		Name:      req.Name,
		Length:    req.Length,
		Width:     req.Width,
		Height:    req.Height,
		Price:     req.Price,
	}
	if err := s.booking.CreateBox(r.Context(), box); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Box created successfully",
		"id":      box.ID,
	})
}

func (s *Server) handleGetBox(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid box ID")
		return
	}

	box, err := s.booking.GetBox(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toBoxResponse(box))
}

func (s *Server) handleListBoxes(w http.ResponseWriter, r *http.Request) {
	storageID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid storage ID")
		return
	}

	var boxes []*repository.Box
	if r.URL.Query().Get("free") == "true" {
		boxes, err = s.booking.ListFreeBoxes(r.Context(), storageID)
	} else {
		boxes, err = s.booking.ListBoxes(r.Context(), storageID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	resp := make([]boxResponse, len(boxes))
	for i, box := range boxes {
		resp[i] = toBoxResponse(box)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBox(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid box ID")
		return
	}

	box, err := s.booking.GetBox(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	var req boxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	box.Name = req.Name
	box.Length = req.Length
	box.Width = req.Width
	box.Height = req.Height
	box.Price = req.Price

	if err := s.booking.UpdateBox(r.Context(), box); err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Box updated successfully",
	})
}

func (s *Server) handleDeleteBox(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid box ID")
		return
	}

	if err := s.booking.DeleteBox(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrBoxOccupied) {
			respondError(w, http.StatusConflict, "Box is occupied by an active order")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Box deleted successfully",
	})
}
