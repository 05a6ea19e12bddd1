package timeline

import "part-tracker/core/models"

// Summary holds the dashboard counters for a set of parts
type Summary struct {
	Total           int                       `json:"total"`
	Approved        int                       `json:"approved"`
	Pending         int                       `json:"pending"`
	Rejected        int                       `json:"rejected"`
	ByStatus        map[models.PartStatus]int `json:"by_status"`
	ByLabel         map[string]int            `json:"by_label"`
	AverageProgress float64                   `json:"average_progress"`
}

// Summarize counts parts by stored status and by dashboard label
func Summarize(parts []models.Part) Summary {
	s := Summary{
		ByStatus: make(map[models.PartStatus]int),
		ByLabel:  make(map[string]int),
	}

	progress := 0
	for _, part := range parts {
		s.Total++
		s.ByStatus[part.Status]++
		s.ByLabel[StatusLabel(part.Status)]++
		progress += RuleFor(part.Status).Progress

		switch part.Status {
		case models.PartStatusApproved:
			s.Approved++
		case models.PartStatusPending:
			s.Pending++
		case models.PartStatusRejected:
			s.Rejected++
		}
	}

	if s.Total > 0 {
		s.AverageProgress = float64(progress) / float64(s.Total)
	}
	return s
}
