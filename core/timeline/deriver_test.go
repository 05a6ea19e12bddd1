package timeline

import (
	"reflect"
	"testing"
	"time"

	"part-tracker/core/models"
)

var (
	created = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	derived = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
)

func testPart(status models.PartStatus) models.Part {
	return models.Part{
		ID:        "4f6c1f3e-7a37-4b0b-9a3c-0c2f4b1f0a11",
		PartID:    "PCB-2024-A",
		Name:      "Circuit Board Module",
		Priority:  models.PriorityHigh,
		Status:    status,
		PlantID:   "plant-1",
		CreatedAt: created,
	}
}

func stageStatuses(change models.PartChange) []models.StageStatus {
	out := make([]models.StageStatus, len(change.Timeline))
	for i, stage := range change.Timeline {
		out[i] = stage.Status
	}
	return out
}

func expectStatuses(def models.StageStatus, overrides map[int]models.StageStatus) []models.StageStatus {
	out := make([]models.StageStatus, len(Stages))
	for i := range out {
		out[i] = def
	}
	for i, s := range overrides {
		out[i] = s
	}
	return out
}

func TestDeriveStatusTable(t *testing.T) {
	tests := []struct {
		status   models.PartStatus
		progress int
		current  string
		label    string
		stages   []models.StageStatus
	}{
		{
			status:   "",
			progress: 9,
			current:  "TEN PART FROM SEC",
			label:    "In Progress",
			stages:   expectStatuses(models.StageStatusPending, map[int]models.StageStatus{0: models.StageStatusCompleted}),
		},
		{
			status:   models.PartStatusInitiated,
			progress: 13,
			current:  "Drawing Part",
			label:    "In Progress",
			stages: expectStatuses(models.StageStatusPending, map[int]models.StageStatus{
				0: models.StageStatusCompleted,
				1: models.StageStatusActive,
			}),
		},
		{
			status:   models.PartStatusPending,
			progress: 27,
			current:  "Price Part",
			label:    "In Progress",
			stages: expectStatuses(models.StageStatusPending, map[int]models.StageStatus{
				0: models.StageStatusCompleted,
				1: models.StageStatusCompleted,
				2: models.StageStatusCompleted,
				3: models.StageStatusActive,
			}),
		},
		{
			status:   models.PartStatusApproved,
			progress: 100,
			current:  "PART APPROVAL CONFIRMATION",
			label:    "Completed",
			stages:   expectStatuses(models.StageStatusCompleted, nil),
		},
		{
			status:   models.PartStatusRejected,
			progress: 9,
			current:  "TEN PART FROM SEC",
			label:    "Delayed",
			stages:   expectStatuses(models.StageStatusPending, map[int]models.StageStatus{0: models.StageStatusDelayed}),
		},
		{
			status:   models.PartStatusCompleted,
			progress: 9,
			current:  "TEN PART FROM SEC",
			label:    "In Progress",
			stages:   expectStatuses(models.StageStatusPending, map[int]models.StageStatus{0: models.StageStatusCompleted}),
		},
		{
			status:   models.PartStatusOnHold,
			progress: 9,
			current:  "TEN PART FROM SEC",
			label:    "In Progress",
			stages:   expectStatuses(models.StageStatusPending, map[int]models.StageStatus{0: models.StageStatusCompleted}),
		},
		{
			status:   "archived",
			progress: 9,
			current:  "TEN PART FROM SEC",
			label:    "In Progress",
			stages:   expectStatuses(models.StageStatusPending, map[int]models.StageStatus{0: models.StageStatusCompleted}),
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			change := Derive(testPart(tt.status), derived)

			if change.Progress != tt.progress {
				t.Fatalf("progress = %d, want %d", change.Progress, tt.progress)
			}
			if change.CurrentStage != tt.current {
				t.Fatalf("current stage = %q, want %q", change.CurrentStage, tt.current)
			}
			if change.Status != tt.label {
				t.Fatalf("status label = %q, want %q", change.Status, tt.label)
			}
			if got := stageStatuses(change); !reflect.DeepEqual(got, tt.stages) {
				t.Fatalf("stage statuses = %v, want %v", got, tt.stages)
			}
		})
	}
}

func TestDeriveCopiesPartFields(t *testing.T) {
	change := Derive(testPart(models.PartStatusPending), derived)

	if change.ID != "PCB-2024-A" {
		t.Fatalf("id = %q", change.ID)
	}
	if change.PartName != "Circuit Board Module" {
		t.Fatalf("part name = %q", change.PartName)
	}
	if change.Priority != models.PriorityHigh {
		t.Fatalf("priority = %q", change.Priority)
	}
	if change.InitiatedBy != InitiatedBy {
		t.Fatalf("initiated by = %q", change.InitiatedBy)
	}
}

func TestDeriveStageOrderIsFixed(t *testing.T) {
	statuses := append([]models.PartStatus{"", "bogus"}, models.PartStatuses...)
	for _, status := range statuses {
		change := Derive(testPart(status), derived)
		if len(change.Timeline) != 11 {
			t.Fatalf("%q: got %d stages, want 11", status, len(change.Timeline))
		}
		for i, stage := range change.Timeline {
			def := Stages[i]
			if stage.Stage != def.Name || stage.Department != def.Department {
				t.Fatalf("%q: stage %d = %s/%s, want %s/%s", status, i, stage.Stage, stage.Department, def.Name, def.Department)
			}
			if stage.Assignee != def.Assignee || stage.EstimatedDuration != def.EstimatedDuration {
				t.Fatalf("%q: stage %d metadata mismatch", status, i)
			}
		}
	}
}

func TestDeriveTimestamps(t *testing.T) {
	change := Derive(testPart(models.PartStatusInitiated), derived)
	if change.Timeline[0].Timestamp == nil || !change.Timeline[0].Timestamp.Equal(created) {
		t.Fatalf("request stage timestamp = %v, want %v", change.Timeline[0].Timestamp, created)
	}
	for i, stage := range change.Timeline[1:] {
		if stage.Timestamp != nil {
			t.Fatalf("stage %d unexpectedly stamped: %v", i+1, stage.Timestamp)
		}
	}

	approved := Derive(testPart(models.PartStatusApproved), derived)
	for i, stage := range approved.Timeline {
		if stage.Timestamp == nil || !stage.Timestamp.Equal(derived) {
			t.Fatalf("approved stage %d timestamp = %v, want %v", i, stage.Timestamp, derived)
		}
	}

	noCreated := testPart(models.PartStatusPending)
	noCreated.CreatedAt = time.Time{}
	if ts := Derive(noCreated, derived).Timeline[0].Timestamp; ts != nil {
		t.Fatalf("expected nil request timestamp, got %v", ts)
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	for _, status := range models.PartStatuses {
		part := testPart(status)
		first := Derive(part, derived)
		second := Derive(part, derived)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%q: derivations differ", status)
		}
	}
}

func TestDeriveDoesNotShareStageState(t *testing.T) {
	first := Derive(testPart(models.PartStatusApproved), derived)
	second := Derive(testPart(""), derived)

	if second.Timeline[10].Status != models.StageStatusPending {
		t.Fatalf("stage state leaked between derivations: %v", second.Timeline[10].Status)
	}
	first.Timeline[0].Notes = "edited"
	if Stages[0].Notes == "edited" {
		t.Fatalf("derived timeline aliases the stage catalogue")
	}
}

func TestDeriveAllPreservesOrder(t *testing.T) {
	parts := []models.Part{testPart(models.PartStatusApproved), testPart(models.PartStatusRejected)}
	parts[1].PartID = "MET-2024-15"

	changes := DeriveAll(parts, derived)
	if len(changes) != 2 {
		t.Fatalf("got %d changes", len(changes))
	}
	if changes[0].ID != "PCB-2024-A" || changes[1].ID != "MET-2024-15" {
		t.Fatalf("unexpected order: %s, %s", changes[0].ID, changes[1].ID)
	}

	if got := DeriveAll(nil, derived); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
