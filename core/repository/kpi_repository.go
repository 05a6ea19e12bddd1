package repository

import (
	"context"

	"part-tracker/core/models"
)

// KPIRepository handles database operations for plant KPI metrics
type KPIRepository struct {
	db *DB
}

// NewKPIRepository creates a new KPI repository
func NewKPIRepository(db *DB) *KPIRepository {
	return &KPIRepository{db: db}
}

// ListKPIMetrics returns a plant's metrics ordered by name
func (r *KPIRepository) ListKPIMetrics(ctx context.Context, plantID string) ([]models.KPIMetric, error) {
	query := `
		SELECT id, plant_id, metric_name, metric_value, metric_unit, recorded_at
		FROM kpi_metrics
		WHERE plant_id = $1
		ORDER BY metric_name ASC, recorded_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, plantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := []models.KPIMetric{}
	for rows.Next() {
		var m models.KPIMetric
		if err := rows.Scan(&m.ID, &m.PlantID, &m.Name, &m.Value, &m.Unit, &m.RecordedAt); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}
