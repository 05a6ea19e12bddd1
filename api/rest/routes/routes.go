package routes

import (
	"net/http"

	"part-tracker/api/rest/handlers"
	"part-tracker/core/monitoring"
	"part-tracker/core/repository"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes. exporter may be nil to disable metrics.
func SetupRoutes(r *mux.Router, db *repository.DB, exporter *monitoring.MetricsExporter, defaultPlantID string) error {
	repos := stores{
		parts:  repository.NewPartRepository(db),
		plants: repository.NewPlantRepository(db),
		tasks:  repository.NewTaskRepository(db),
		kpis:   repository.NewKPIRepository(db),
	}

	var recorder metricsRecorder
	if exporter != nil {
		reg := prometheus.NewRegistry()
		if err := reg.Register(exporter); err != nil {
			return err
		}
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")
		recorder = exporter
	}

	registerRoutes(r, repos, recorder, defaultPlantID)
	return nil
}

type metricsRecorder interface {
	handlers.StatusRecorder
	requestRecorder
}

type stores struct {
	parts  handlers.PartStore
	plants handlers.PlantStore
	tasks  handlers.TaskStore
	kpis   handlers.KPIStore
}

// registerRoutes mounts every route on r itself. Routes on a PathPrefix
// subrouter answer a wrong method with 404, so /v1 is spelled out per route
// to keep 405 responses.
func registerRoutes(r *mux.Router, s stores, recorder metricsRecorder, defaultPlantID string) {
	var statusRecorder handlers.StatusRecorder
	if recorder != nil {
		statusRecorder = recorder
		r.Use(metricsMiddleware(recorder))
	}
	r.Use(loggingMiddleware)

	partHandler := handlers.NewPartHandler(s.parts, s.plants, statusRecorder)
	taskHandler := handlers.NewTaskHandler(s.tasks, s.parts)
	dashboardHandler := handlers.NewDashboardHandler(s.parts, s.plants, s.kpis, defaultPlantID)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	// Plant endpoints
	r.HandleFunc("/v1/plants", dashboardHandler.ListPlants).Methods("GET")

	// Part endpoints
	r.HandleFunc("/v1/parts", partHandler.ListParts).Methods("GET")
	r.HandleFunc("/v1/parts", partHandler.CreatePart).Methods("POST")
	r.HandleFunc("/v1/parts/{id}", partHandler.GetPart).Methods("GET")
	r.HandleFunc("/v1/parts/{id}/timeline", partHandler.GetPartTimeline).Methods("GET")
	r.HandleFunc("/v1/parts/{id}/status", partHandler.UpdateStatus).Methods("POST")
	r.HandleFunc("/v1/parts/{id}/approve", partHandler.Approve).Methods("POST")
	r.HandleFunc("/v1/parts/{id}/reject", partHandler.Reject).Methods("POST")

	// Task endpoints
	r.HandleFunc("/v1/tasks", taskHandler.ListTasks).Methods("GET")
	r.HandleFunc("/v1/tasks", taskHandler.CreateTask).Methods("POST")
	r.HandleFunc("/v1/tasks/{id}/status", taskHandler.UpdateStatus).Methods("POST")

	// Dashboard endpoints
	r.HandleFunc("/v1/timeline", dashboardHandler.ListTimeline).Methods("GET")
	r.HandleFunc("/v1/dashboard/summary", dashboardHandler.GetSummary).Methods("GET")
	r.HandleFunc("/v1/kpi", dashboardHandler.ListKPIMetrics).Methods("GET")
}
