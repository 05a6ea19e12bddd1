package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"part-tracker/core/models"
	"part-tracker/core/timeline"

	"github.com/gorilla/mux"
)

// PartHandler handles part-related HTTP requests
type PartHandler struct {
	parts   PartStore
	plants  PlantStore
	metrics StatusRecorder
	now     Clock
}

// NewPartHandler creates a new part handler. metrics may be nil.
func NewPartHandler(parts PartStore, plants PlantStore, metrics StatusRecorder) *PartHandler {
	return &PartHandler{
		parts:   parts,
		plants:  plants,
		metrics: metrics,
		now:     time.Now,
	}
}

// ListParts handles GET /v1/parts
func (h *PartHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	plantID, err := scopePlant(r.URL.Query().Get("plant_id"))
	if err != nil {
		writeError(w, "Invalid plant id", err)
		return
	}

	parts, err := h.parts.ListParts(r.Context(), plantID)
	if err != nil {
		writeError(w, "Failed to list parts", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": partItems(parts),
	})
}

// CreatePart handles POST /v1/parts
func (h *PartHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req CreatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	req.normalize()
	if err := req.Validate(); err != nil {
		writeError(w, "Invalid part", err)
		return
	}

	if _, err := h.plants.GetPlant(r.Context(), req.PlantID); err != nil {
		writeError(w, "Unknown plant", missingReference(err, "plant", req.PlantID))
		return
	}

	part := req.Part()
	if err := h.parts.CreatePart(r.Context(), part); err != nil {
		writeError(w, "Failed to create part", err)
		return
	}

	log.Printf("Created part %s (%s) for plant %s", part.PartID, part.ID, part.PlantID)
	writeJSON(w, http.StatusCreated, partItem(*part))
}

// GetPart handles GET /v1/parts/{id}
func (h *PartHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid part id", err)
		return
	}

	part, err := h.parts.GetPart(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to get part", err)
		return
	}

	writeJSON(w, http.StatusOK, partItem(*part))
}

// GetPartTimeline handles GET /v1/parts/{id}/timeline
func (h *PartHandler) GetPartTimeline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid part id", err)
		return
	}

	part, err := h.parts.GetPart(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to get part", err)
		return
	}

	writeJSON(w, http.StatusOK, timeline.Derive(*part, h.now()))
}

// UpdateStatus handles POST /v1/parts/{id}/status
func (h *PartHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	req.Status = string(models.ParsePartStatus(req.Status))
	if err := req.Validate(); err != nil {
		writeError(w, "Invalid status", err)
		return
	}

	h.setStatus(w, r, models.PartStatus(req.Status))
}

// Approve handles POST /v1/parts/{id}/approve
func (h *PartHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PartStatusApproved)
}

// Reject handles POST /v1/parts/{id}/reject
func (h *PartHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PartStatusRejected)
}

func (h *PartHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.PartStatus) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid part id", err)
		return
	}

	part, err := h.parts.UpdatePartStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, "Failed to update part status", err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveStatusUpdate(status)
	}

	log.Printf("Updated part %s status to %s", part.ID, status)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"part":   partItem(*part),
		"change": timeline.Derive(*part, h.now()),
	})
}

func partItem(part models.Part) map[string]interface{} {
	return map[string]interface{}{
		"id":          part.ID,
		"part_id":     part.PartID,
		"name":        part.Name,
		"description": part.Description,
		"priority":    part.Priority,
		"status":      part.Status,
		"plant_id":    part.PlantID,
		"created_at":  part.CreatedAt,
	}
}

func partItems(parts []models.Part) []map[string]interface{} {
	items := make([]map[string]interface{}, len(parts))
	for i, part := range parts {
		items[i] = partItem(part)
	}
	return items
}
