package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"part-tracker/core/models"
	"part-tracker/core/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var errBadRequest = errors.New("bad request")

// CreatePartRequest represents the request to register a part change
type CreatePartRequest struct {
	PartID      string `json:"part_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	PlantID     string `json:"plant_id"`
	Status      string `json:"status"`
}

// normalize trims identifiers and canonicalizes the status so blank values fail validation
func (r *CreatePartRequest) normalize() {
	r.PartID = strings.TrimSpace(r.PartID)
	r.Name = strings.TrimSpace(r.Name)
	r.Priority = strings.TrimSpace(r.Priority)
	r.PlantID = strings.TrimSpace(r.PlantID)
	r.Status = string(models.ParsePartStatus(r.Status))
}

// Validate checks required fields and enumerated values
func (r CreatePartRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PartID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Priority, validation.Required, validation.In(priorityValues()...)),
		validation.Field(&r.PlantID, validation.Required, is.UUID),
		validation.Field(&r.Status, validation.In(statusValues()...)),
	)
}

// Part converts the request into a part record
func (r CreatePartRequest) Part() *models.Part {
	return &models.Part{
		PartID:      r.PartID,
		Name:        r.Name,
		Description: r.Description,
		Priority:    models.Priority(r.Priority),
		Status:      models.PartStatus(r.Status),
		PlantID:     r.PlantID,
	}
}

// UpdateStatusRequest represents the request to change a part's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status is one the parts table accepts
func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(statusValues()...)),
	)
}

// CreateTaskRequest represents the request to assign a task
type CreateTaskRequest struct {
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee"`
	Department  string     `json:"department"`
	PartID      string     `json:"part_id"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
}

func (r *CreateTaskRequest) normalize() {
	r.TaskID = strings.TrimSpace(r.TaskID)
	r.Title = strings.TrimSpace(r.Title)
	r.Priority = strings.TrimSpace(r.Priority)
	r.Assignee = strings.TrimSpace(r.Assignee)
	r.Department = strings.TrimSpace(r.Department)
	r.PartID = strings.TrimSpace(r.PartID)
	r.Status = string(models.ParseTaskStatus(r.Status))
}

// Validate checks required fields and enumerated values
func (r CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TaskID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Priority, validation.Required, validation.In(priorityValues()...)),
		validation.Field(&r.Assignee, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Department, validation.In(departmentValues()...)),
		validation.Field(&r.PartID, is.UUID),
		validation.Field(&r.Status, validation.In(taskStatusValues()...)),
	)
}

// Task converts the request into a task record
func (r CreateTaskRequest) Task() *models.Task {
	return &models.Task{
		TaskID:      r.TaskID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    models.Priority(r.Priority),
		Assignee:    r.Assignee,
		Department:  models.Department(r.Department),
		PartID:      r.PartID,
		Status:      models.TaskStatus(r.Status),
		DueDate:     r.DueDate,
	}
}

// UpdateTaskStatusRequest represents the request to move a task through its workflow
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status is one the tasks table accepts
func (r UpdateTaskStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(taskStatusValues()...)),
	)
}

func priorityValues() []interface{} {
	out := make([]interface{}, len(models.Priorities))
	for i, p := range models.Priorities {
		out[i] = string(p)
	}
	return out
}

func statusValues() []interface{} {
	out := make([]interface{}, len(models.PartStatuses))
	for i, s := range models.PartStatuses {
		out[i] = string(s)
	}
	return out
}

func taskStatusValues() []interface{} {
	out := make([]interface{}, len(models.TaskStatuses))
	for i, s := range models.TaskStatuses {
		out[i] = string(s)
	}
	return out
}

func departmentValues() []interface{} {
	out := make([]interface{}, len(models.Departments))
	for i, d := range models.Departments {
		out[i] = string(d)
	}
	return out
}

// missingReference reports a body field naming a row that does not exist as a bad request
func missingReference(err error, what, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %s does not exist", errBadRequest, what, id)
	}
	return err
}

// parseID rejects identifiers that are not UUIDs before they reach storage
func parseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid id %q", errBadRequest, raw)
	}
	return id.String(), nil
}

// scopePlant validates an optional plant filter; empty means all plants
func scopePlant(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	return parseID(raw)
}
