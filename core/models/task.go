package models

import (
	"strings"
	"time"
)

// Task represents a follow-up action assigned to a person, optionally tied to a part change
type Task struct {
	ID          string
	TaskID      string // Business identifier, e.g. "TSK-001"
	Title       string
	Description string
	Priority    Priority
	Assignee    string
	Department  Department
	PartID      string // Row ID of the related part; empty when unrelated
	Status      TaskStatus
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// TaskStatuses lists every status the tasks table accepts
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusOverdue,
}

// ParseTaskStatus normalizes user input ("In Progress", "OVERDUE") into a TaskStatus
func ParseTaskStatus(raw string) TaskStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	return TaskStatus(strings.ReplaceAll(s, " ", "_"))
}

// Department owns a task
type Department string

const (
	DepartmentEngineering     Department = "Engineering Department"
	DepartmentQuality         Department = "Quality Department"
	DepartmentManufacturing   Department = "Manufacturing"
	DepartmentCostControl     Department = "Cost Control"
	DepartmentPartEngineering Department = "Part Engineering"
	DepartmentPurchasing      Department = "Purchasing"
)

// Departments lists every accepted department
var Departments = []Department{
	DepartmentEngineering,
	DepartmentQuality,
	DepartmentManufacturing,
	DepartmentCostControl,
	DepartmentPartEngineering,
	DepartmentPurchasing,
}
