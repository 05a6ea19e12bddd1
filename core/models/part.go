package models

import (
	"strings"
	"time"
)

// Part represents a 4M part change request tracked for a plant
type Part struct {
	ID          string // Row identifier (uuid)
	PartID      string // Business identifier shown to users, e.g. "PCB-2024-A"
	Name        string
	Description string
	Priority    Priority
	Status      PartStatus
	PlantID     string
	CreatedAt   time.Time
}

// Priority represents how urgently a part change must be processed
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists every accepted priority value
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// PartStatus represents the coarse status stored for a part
type PartStatus string

const (
	PartStatusInitiated PartStatus = "initiated"
	PartStatusPending   PartStatus = "pending"
	PartStatusApproved  PartStatus = "approved"
	PartStatusCompleted PartStatus = "completed"
	PartStatusRejected  PartStatus = "rejected"
	PartStatusOnHold    PartStatus = "on_hold"
)

// PartStatuses lists every status the parts table accepts
var PartStatuses = []PartStatus{
	PartStatusInitiated,
	PartStatusPending,
	PartStatusApproved,
	PartStatusCompleted,
	PartStatusRejected,
	PartStatusOnHold,
}

// Valid reports whether s is one of the stored status values
func (s PartStatus) Valid() bool {
	for _, status := range PartStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ParsePartStatus normalizes user input ("Approved", " on_hold ") into a PartStatus
func ParsePartStatus(raw string) PartStatus {
	return PartStatus(strings.ToLower(strings.TrimSpace(raw)))
}
