package api

import (
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/services"
)

// TrackingResult is the outcome of a start or stop request
type TrackingResult struct {
	// Mark is the mark that was (or would have been) appended.
	Mark domain.TimeMark `json:"mark"`
	// Applied is false when the request was redundant and the log is unchanged.
	Applied bool `json:"applied"`
	// Previous is the last mark in the log before the request, if any.
	Previous *domain.TimeMark `json:"previous,omitempty"`
	// Today is the day total after a stop; nil for start.
	Today *Report `json:"today,omitempty"`
}

// SessionStatus describes whether time is currently being tracked
type SessionStatus struct {
	State    domain.SessionState `json:"state"`
	Since    *time.Time          `json:"since,omitempty"`
	Elapsed  time.Duration       `json:"elapsed"`
	Duration string              `json:"duration"` // Human-readable elapsed time
}

// IsTracking reports whether a session is open
func (s *SessionStatus) IsTracking() bool {
	return s.State == domain.Tracking
}

// Report is a formatted total for a day or a week
type Report struct {
	Label        string        `json:"label"`
	Hours        int           `json:"hours"`
	Minutes      int           `json:"minutes"`
	TotalMinutes int           `json:"total_minutes"`
	Running      bool          `json:"running"`
	Total        time.Duration `json:"-"`
	Formatted    string        `json:"-"`
}

func newReport(summary *services.Summary, timeService services.TimeService) *Report {
	total := summary.Total
	return &Report{
		Label:        summary.Label,
		Hours:        int(total.Hours()),
		Minutes:      int(total.Minutes()) % 60,
		TotalMinutes: int(total.Minutes()),
		Running:      summary.Running,
		Total:        total,
		Formatted:    timeService.FormatDuration(total),
	}
}
