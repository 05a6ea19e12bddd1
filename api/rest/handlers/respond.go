package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"part-tracker/core/models"
	"part-tracker/core/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PartStore is the storage collaborator for part records
type PartStore interface {
	ListParts(ctx context.Context, plantID string) ([]models.Part, error)
	GetPart(ctx context.Context, id string) (*models.Part, error)
	CreatePart(ctx context.Context, part *models.Part) error
	UpdatePartStatus(ctx context.Context, id string, status models.PartStatus) (*models.Part, error)
}

// PlantStore is the storage collaborator for plant records
type PlantStore interface {
	ListPlants(ctx context.Context) ([]models.Plant, error)
	GetPlant(ctx context.Context, id string) (*models.Plant, error)
}

// TaskStore is the storage collaborator for task records
type TaskStore interface {
	ListTasks(ctx context.Context, assignee string) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)
}

// KPIStore is the storage collaborator for plant KPI metrics
type KPIStore interface {
	ListKPIMetrics(ctx context.Context, plantID string) ([]models.KPIMetric, error)
}

// StatusRecorder observes successful status updates
type StatusRecorder interface {
	ObserveStatusUpdate(status models.PartStatus)
}

// Clock returns the time used when deriving timelines
type Clock func() time.Time

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps err onto an HTTP status and a JSON error body
func writeError(w http.ResponseWriter, msg string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  msg,
			"fields": verrs,
		})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": msg + ": not found"})
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg + ": " + err.Error()})
	default:
		log.Printf("%s: %v", msg, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
	}
}
