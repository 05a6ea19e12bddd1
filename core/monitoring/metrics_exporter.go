package monitoring

import (
	"context"
	"log"
	"strconv"
	"time"

	"part-tracker/core/models"
	"part-tracker/core/timeline"

	"github.com/prometheus/client_golang/prometheus"
)

// PartLister is the read path the exporter needs from storage
type PartLister interface {
	ListParts(ctx context.Context, plantID string) ([]models.Part, error)
}

// MetricsExporter exposes part workflow metrics for Prometheus/Grafana.
// Part counts are read from storage on every scrape.
type MetricsExporter struct {
	parts   PartLister
	timeout time.Duration

	partsDesc    *prometheus.Desc
	progressDesc *prometheus.Desc
	scrapeErrors prometheus.Counter

	statusUpdates *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
}

// NewMetricsExporter creates a new metrics exporter
func NewMetricsExporter(parts PartLister) *MetricsExporter {
	return &MetricsExporter{
		parts:   parts,
		timeout: 5 * time.Second,
		partsDesc: prometheus.NewDesc(
			"parttracker_parts",
			"Number of part change requests by plant and status",
			[]string{"plant_id", "status"}, nil,
		),
		progressDesc: prometheus.NewDesc(
			"parttracker_part_progress_percent",
			"Distribution of derived workflow progress across parts",
			nil, nil,
		),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parttracker_scrape_errors_total",
			Help: "Number of scrapes that failed to read parts from storage",
		}),
		statusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parttracker_status_updates_total",
			Help: "Number of part status updates by target status",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parttracker_http_requests_total",
			Help: "Number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
	}
}

// Describe implements prometheus.Collector
func (me *MetricsExporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- me.partsDesc
	ch <- me.progressDesc
	me.scrapeErrors.Describe(ch)
	me.statusUpdates.Describe(ch)
	me.httpRequests.Describe(ch)
}

var progressBuckets = []float64{10, 25, 50, 75, 100}

// Collect implements prometheus.Collector
func (me *MetricsExporter) Collect(ch chan<- prometheus.Metric) {
	me.statusUpdates.Collect(ch)
	me.httpRequests.Collect(ch)

	ctx, cancel := context.WithTimeout(context.Background(), me.timeout)
	defer cancel()

	parts, err := me.parts.ListParts(ctx, "")
	if err != nil {
		log.Printf("Failed to list parts for metrics: %v", err)
		me.scrapeErrors.Inc()
		me.scrapeErrors.Collect(ch)
		return
	}
	me.scrapeErrors.Collect(ch)

	type key struct {
		plant  string
		status models.PartStatus
	}
	counts := make(map[key]int)
	buckets := make(map[float64]uint64, len(progressBuckets))
	sum := 0.0

	for _, part := range parts {
		counts[key{plant: part.PlantID, status: part.Status}]++

		progress := float64(timeline.RuleFor(part.Status).Progress)
		sum += progress
		for _, b := range progressBuckets {
			if progress <= b {
				buckets[b]++
			}
		}
	}

	for k, n := range counts {
		ch <- prometheus.MustNewConstMetric(me.partsDesc, prometheus.GaugeValue, float64(n), k.plant, string(k.status))
	}
	ch <- prometheus.MustNewConstHistogram(me.progressDesc, uint64(len(parts)), sum, buckets)
}

// ObserveStatusUpdate records a successful status update
func (me *MetricsExporter) ObserveStatusUpdate(status models.PartStatus) {
	me.statusUpdates.WithLabelValues(string(status)).Inc()
}

// ObserveRequest records a served HTTP request
func (me *MetricsExporter) ObserveRequest(route, method string, code int) {
	me.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}
