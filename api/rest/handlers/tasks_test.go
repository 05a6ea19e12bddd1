package handlers

import (
	"errors"
	"net/http"
	"testing"

	"part-tracker/core/models"
)

type taskResponse struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	PartID   string `json:"part_id"`
	Status   string `json:"status"`
}

func TestListTasks(t *testing.T) {
	store := newFakeStore()
	store.tasks = append(store.tasks, models.Task{ID: "t2", TaskID: "TSK-002", Title: "Update supplier PPAP", Assignee: "Sarah Lee", Status: models.TaskStatusOverdue})
	r := newRouter(store, nil)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"TSK-001", "TSK-002"}},
		{query: "?assignee=John+Manager", want: []string{"TSK-001"}},
		{query: "?assignee=+Sarah+Lee+", want: []string{"TSK-002"}},
		{query: "?assignee=Nobody", want: []string{}},
	}

	for _, tt := range tests {
		rec := do(t, r, "GET", "/v1/tasks"+tt.query, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: code %d", tt.query, rec.Code)
		}
		var resp struct {
			Items []taskResponse `json:"items"`
		}
		decode(t, rec, &resp)
		if len(resp.Items) != len(tt.want) {
			t.Fatalf("%s: got %d items, want %v", tt.query, len(resp.Items), tt.want)
		}
		for i, id := range tt.want {
			if resp.Items[i].TaskID != id {
				t.Fatalf("%s: item %d = %s, want %s", tt.query, i, resp.Items[i].TaskID, id)
			}
		}
	}
}

func TestListTasksStorageError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	if rec := do(t, newRouter(store, nil), "GET", "/v1/tasks", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestCreateTask(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	body := `{"task_id":" TSK-010 ","title":"Validate gasket fit","priority":"Medium","assignee":"John Manager",` +
		`"department":"Quality Department","part_id":"` + partB + `","due_date":"2024-03-15T00:00:00Z","status":"In Progress"}`
	rec := do(t, r, "POST", "/v1/tasks", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.createdTasks) != 1 {
		t.Fatalf("expected one created task, got %d", len(store.createdTasks))
	}
	created := store.createdTasks[0]
	if created.TaskID != "TSK-010" || created.Status != models.TaskStatusInProgress || created.PartID != partB {
		t.Fatalf("unexpected task: %+v", created)
	}
	if created.DueDate == nil || created.DueDate.Day() != 15 {
		t.Fatalf("due date not carried: %v", created.DueDate)
	}

	var resp taskResponse
	decode(t, rec, &resp)
	if resp.ID == "" || resp.Status != "in_progress" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateTaskDefaultsToPending(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	rec := do(t, r, "POST", "/v1/tasks", `{"task_id":"TSK-011","title":"Call supplier","priority":"Low","assignee":"John Manager"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}
	if got := store.createdTasks[0]; got.Status != models.TaskStatusPending || got.PartID != "" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	base := `"task_id":"TSK-1","title":"Review","priority":"Low","assignee":"John Manager"`
	tests := []struct {
		name  string
		body  string
		code  int
		field string
	}{
		{name: "blank title", body: `{"task_id":"TSK-1","title":"  ","priority":"Low","assignee":"John Manager"}`, code: http.StatusBadRequest, field: "title"},
		{name: "missing assignee", body: `{"task_id":"TSK-1","title":"Review","priority":"Low"}`, code: http.StatusBadRequest, field: "assignee"},
		{name: "bad priority", body: `{"task_id":"TSK-1","title":"Review","priority":"Soon","assignee":"John Manager"}`, code: http.StatusBadRequest, field: "priority"},
		{name: "bad department", body: `{` + base + `,"department":"Marketing"}`, code: http.StatusBadRequest, field: "department"},
		{name: "bad status", body: `{` + base + `,"status":"blocked"}`, code: http.StatusBadRequest, field: "status"},
		{name: "bad part id", body: `{` + base + `,"part_id":"part-a"}`, code: http.StatusBadRequest, field: "part_id"},
		{name: "unknown part", body: `{` + base + `,"part_id":"` + plantA + `"}`, code: http.StatusBadRequest},
		{name: "bad due date", body: `{` + base + `,"due_date":"next week"}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, r, "POST", "/v1/tasks", tt.body)
			if resp.Code != tt.code {
				t.Fatalf("code = %d, want %d: %s", resp.Code, tt.code, resp.Body.String())
			}
			if tt.field == "" {
				return
			}
			var body struct {
				Fields map[string]string `json:"fields"`
			}
			decode(t, resp, &body)
			if _, ok := body.Fields[tt.field]; !ok {
				t.Fatalf("expected error for %q, got %v", tt.field, body.Fields)
			}
		})
	}
	if len(store.createdTasks) != 0 {
		t.Fatalf("invalid requests created tasks: %d", len(store.createdTasks))
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	rec := do(t, r, "POST", "/v1/tasks/"+taskA+"/status", `{"status":"Completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}
	var resp taskResponse
	decode(t, rec, &resp)
	if resp.Status != "completed" || store.tasks[0].Status != models.TaskStatusCompleted {
		t.Fatalf("status not applied: %+v", resp)
	}

	for _, body := range []string{`{"status":"approved"}`, `{}`, `not json`} {
		if rec := do(t, r, "POST", "/v1/tasks/"+taskA+"/status", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: code = %d", body, rec.Code)
		}
	}
	if store.tasks[0].Status != models.TaskStatusCompleted {
		t.Fatalf("status changed on invalid request: %s", store.tasks[0].Status)
	}

	if rec := do(t, r, "POST", "/v1/tasks/"+partA+"/status", `{"status":"pending"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown task: code = %d", rec.Code)
	}
	if rec := do(t, r, "POST", "/v1/tasks/TSK-001/status", `{"status":"pending"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: code = %d", rec.Code)
	}
}

func TestListKPIMetrics(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	var resp struct {
		PlantID string `json:"plant_id"`
		Items   []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		} `json:"items"`
	}
	rec := do(t, r, "GET", "/v1/kpi?plant_id="+plantA, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &resp)
	if resp.PlantID != plantA || len(resp.Items) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Items[1].Name != "OEE" || resp.Items[1].Value != 87.5 || resp.Items[1].Unit != "%" {
		t.Fatalf("unexpected metric: %+v", resp.Items[1])
	}
}

func TestListKPIMetricsWithoutPlant(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store, nil)

	rec := do(t, r, "GET", "/v1/kpi", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	var resp struct {
		Items []map[string]interface{} `json:"items"`
	}
	decode(t, rec, &resp)
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("expected empty items, got %#v", resp.Items)
	}
	if len(store.kpiPlants) != 0 {
		t.Fatalf("storage queried without a plant: %v", store.kpiPlants)
	}

	if rec := do(t, r, "GET", "/v1/kpi?plant_id=plant-a", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad plant id: code = %d", rec.Code)
	}
}
