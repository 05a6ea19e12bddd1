package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"part-tracker/core/models"

	"github.com/gorilla/mux"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks TaskStore
	parts PartStore
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks TaskStore, parts PartStore) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		parts: parts,
	}
}

// ListTasks handles GET /v1/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	assignee := strings.TrimSpace(r.URL.Query().Get("assignee"))

	tasks, err := h.tasks.ListTasks(r.Context(), assignee)
	if err != nil {
		writeError(w, "Failed to list tasks", err)
		return
	}

	items := make([]map[string]interface{}, len(tasks))
	for i, task := range tasks {
		items[i] = taskItem(task)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// CreateTask handles POST /v1/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	req.normalize()
	if err := req.Validate(); err != nil {
		writeError(w, "Invalid task", err)
		return
	}

	if req.PartID != "" {
		if _, err := h.parts.GetPart(r.Context(), req.PartID); err != nil {
			writeError(w, "Unknown part", missingReference(err, "part", req.PartID))
			return
		}
	}

	task := req.Task()
	if err := h.tasks.CreateTask(r.Context(), task); err != nil {
		writeError(w, "Failed to create task", err)
		return
	}

	log.Printf("Created task %s (%s) for %s", task.TaskID, task.ID, task.Assignee)
	writeJSON(w, http.StatusCreated, taskItem(*task))
}

// UpdateStatus handles POST /v1/tasks/{id}/status
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid task id", err)
		return
	}

	var req UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	req.Status = string(models.ParseTaskStatus(req.Status))
	if err := req.Validate(); err != nil {
		writeError(w, "Invalid status", err)
		return
	}

	task, err := h.tasks.UpdateTaskStatus(r.Context(), id, models.TaskStatus(req.Status))
	if err != nil {
		writeError(w, "Failed to update task status", err)
		return
	}

	log.Printf("Updated task %s status to %s", task.ID, task.Status)
	writeJSON(w, http.StatusOK, taskItem(*task))
}

func taskItem(task models.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":           task.ID,
		"task_id":      task.TaskID,
		"title":        task.Title,
		"description":  task.Description,
		"priority":     task.Priority,
		"assignee":     task.Assignee,
		"department":   task.Department,
		"part_id":      task.PartID,
		"status":       task.Status,
		"due_date":     task.DueDate,
		"completed_at": task.CompletedAt,
		"created_at":   task.CreatedAt,
	}
}
