// Package timeline derives the dashboard view of a part change from its
// stored status and narrows lists of derived views for display.
package timeline

import (
	"time"

	"part-tracker/core/models"
)

// InitiatedBy is the initiator label shown for every part change
const InitiatedBy = "Engineering"

// Derive builds the PartChange view for a single part. now is used as the
// completion timestamp when the whole workflow is marked completed.
func Derive(part models.Part, now time.Time) models.PartChange {
	rule := RuleFor(part.Status)

	stages := make([]models.TimelineStage, len(Stages))
	for i, def := range Stages {
		stages[i] = models.TimelineStage{
			Stage:             def.Name,
			Department:        def.Department,
			Status:            models.StageStatusPending,
			Assignee:          def.Assignee,
			Notes:             def.Notes,
			EstimatedDuration: def.EstimatedDuration,
		}
	}

	// The request stage is received as soon as the part exists
	stages[StageRequest].Status = models.StageStatusCompleted
	if !part.CreatedAt.IsZero() {
		created := part.CreatedAt
		stages[StageRequest].Timestamp = &created
	}

	for _, o := range rule.Overrides {
		stages[o.Index].Status = o.Status
	}

	if rule.CompleteAll {
		for i := range stages {
			stamp := now
			stages[i].Status = models.StageStatusCompleted
			stages[i].Timestamp = &stamp
		}
	}

	return models.PartChange{
		ID:           part.PartID,
		PartName:     part.Name,
		InitiatedBy:  InitiatedBy,
		Priority:     part.Priority,
		Status:       StatusLabel(part.Status),
		CurrentStage: Stages[rule.CurrentStage].Name,
		Progress:     rule.Progress,
		Timeline:     stages,
	}
}

// DeriveAll derives a PartChange for each part, preserving order
func DeriveAll(parts []models.Part, now time.Time) []models.PartChange {
	changes := make([]models.PartChange, 0, len(parts))
	for _, part := range parts {
		changes = append(changes, Derive(part, now))
	}
	return changes
}

// StatusLabel returns the dashboard label for a stored part status
func StatusLabel(status models.PartStatus) string {
	switch status {
	case models.PartStatusApproved:
		return models.StatusLabelCompleted
	case models.PartStatusRejected:
		return models.StatusLabelDelayed
	default:
		return models.StatusLabelInProgress
	}
}
