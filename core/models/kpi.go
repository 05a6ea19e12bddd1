package models

import "time"

// KPIMetric is a single recorded plant performance figure
type KPIMetric struct {
	ID         string
	PlantID    string
	Name       string
	Value      float64
	Unit       string
	RecordedAt time.Time
}
