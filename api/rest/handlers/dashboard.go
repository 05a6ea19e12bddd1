package handlers

import (
	"net/http"
	"time"

	"part-tracker/core/timeline"
)

// DashboardHandler handles dashboard API requests
type DashboardHandler struct {
	parts          PartStore
	plants         PlantStore
	kpis           KPIStore
	defaultPlantID string
	now            Clock
}

// NewDashboardHandler creates a new dashboard handler. defaultPlantID scopes
// requests that do not name a plant; empty means all plants.
func NewDashboardHandler(parts PartStore, plants PlantStore, kpis KPIStore, defaultPlantID string) *DashboardHandler {
	return &DashboardHandler{
		parts:          parts,
		plants:         plants,
		kpis:           kpis,
		defaultPlantID: defaultPlantID,
		now:            time.Now,
	}
}

func (h *DashboardHandler) plantID(r *http.Request) (string, error) {
	id := r.URL.Query().Get("plant_id")
	if id == "" {
		id = h.defaultPlantID
	}
	return scopePlant(id)
}

// ListPlants handles GET /v1/plants
func (h *DashboardHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	plants, err := h.plants.ListPlants(r.Context())
	if err != nil {
		writeError(w, "Failed to list plants", err)
		return
	}

	items := make([]map[string]interface{}, len(plants))
	for i, plant := range plants {
		items[i] = map[string]interface{}{
			"id":         plant.ID,
			"name":       plant.Name,
			"location":   plant.Location,
			"created_at": plant.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// ListTimeline handles GET /v1/timeline
func (h *DashboardHandler) ListTimeline(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")
	status := query.Get("status")
	if status == "" {
		status = timeline.StatusAll
	}

	plantID, err := h.plantID(r)
	if err != nil {
		writeError(w, "Invalid plant id", err)
		return
	}

	parts, err := h.parts.ListParts(r.Context(), plantID)
	if err != nil {
		writeError(w, "Failed to list parts", err)
		return
	}

	changes := timeline.DeriveAll(parts, h.now())
	filtered := timeline.Filter(changes, search, status)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": filtered,
		"total": len(changes),
	})
}

// GetSummary handles GET /v1/dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	plantID, err := h.plantID(r)
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
		"plant_id": plantID,
		"summary":  timeline.Summarize(parts),
	})
}

// ListKPIMetrics handles GET /v1/kpi. Without a plant there is nothing to report.
func (h *DashboardHandler) ListKPIMetrics(w http.ResponseWriter, r *http.Request) {
	plantID, err := h.plantID(r)
	if err != nil {
		writeError(w, "Invalid plant id", err)
		return
	}

	items := []map[string]interface{}{}
	if plantID != "" {
		metrics, err := h.kpis.ListKPIMetrics(r.Context(), plantID)
		if err != nil {
			writeError(w, "Failed to list KPI metrics", err)
			return
		}
		for _, m := range metrics {
			items = append(items, map[string]interface{}{
				"id":          m.ID,
				"plant_id":    m.PlantID,
				"name":        m.Name,
				"value":       m.Value,
				"unit":        m.Unit,
				"recorded_at": m.RecordedAt,
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plant_id": plantID,
		"items":    items,
	})
}
