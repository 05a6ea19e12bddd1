package models

import "time"

// StageStatus represents the derived state of a single workflow stage
type StageStatus string

const (
	StageStatusCompleted StageStatus = "completed"
	StageStatusActive    StageStatus = "active"
	StageStatusDelayed   StageStatus = "delayed"
	StageStatusPending   StageStatus = "pending"
)

// TimelineStage is one entry of a derived part change timeline
type TimelineStage struct {
	Stage             string      `json:"stage"`
	Department        string      `json:"department"`
	Status            StageStatus `json:"status"`
	Timestamp         *time.Time  `json:"timestamp"`
	Assignee          string      `json:"assignee"`
	Notes             string      `json:"notes"`
	EstimatedDuration string      `json:"estimatedDuration"`
}

// Status labels shown on the dashboard
const (
	StatusLabelCompleted  = "Completed"
	StatusLabelDelayed    = "Delayed"
	StatusLabelInProgress = "In Progress"
)

// PartChange is the dashboard view of a part's progress through the workflow
type PartChange struct {
	ID           string          `json:"id"`
	PartName     string          `json:"partName"`
	InitiatedBy  string          `json:"initiatedBy"`
	Priority     Priority        `json:"priority"`
	Status       string          `json:"status"`
	CurrentStage string          `json:"currentStage"`
	Progress     int             `json:"progress"`
	Timeline     []TimelineStage `json:"timeline"`
}
