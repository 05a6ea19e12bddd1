package timeline

import (
	"strings"

	"part-tracker/core/models"
)

// StatusAll disables status filtering
const StatusAll = "all"

// Filter returns the part changes matching search and status. search is a
// case-insensitive substring of the part name or id; status is either "all"
// or a status label compared case-insensitively. Surrounding whitespace is
// ignored on both. The input is not modified.
func Filter(changes []models.PartChange, search, status string) []models.PartChange {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)

	filtered := make([]models.PartChange, 0, len(changes))
	for _, change := range changes {
		if !matchesSearch(change, search) {
			continue
		}
		if status != "" && !strings.EqualFold(status, StatusAll) && !strings.EqualFold(change.Status, status) {
			continue
		}
		filtered = append(filtered, change)
	}
	return filtered
}

func matchesSearch(change models.PartChange, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(change.PartName), search) ||
		strings.Contains(strings.ToLower(change.ID), search)
}
