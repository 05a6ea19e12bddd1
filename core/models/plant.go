package models

import "time"

// Plant represents a manufacturing site that owns part change requests
type Plant struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
}
