package services

import (
	"context"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/repository"
)

// Session is the current tracking state together with the mark it was derived from
type Session struct {
	State domain.SessionState `json:"state"`
	Last  *domain.TimeMark    `json:"last,omitempty"`
}

// Transition is the outcome of a start or stop request.
// Applied is false when the request was redundant and nothing was written;
// Previous then holds the mark that made it redundant (nil for a stop on an
// empty log).
type Transition struct {
	Mark     domain.TimeMark  `json:"mark"`
	Previous *domain.TimeMark `json:"previous,omitempty"`
	Applied  bool             `json:"applied"`
}

// Summary is an aggregated total for one date filter
type Summary struct {
	Label     string            `json:"label"`
	Total     time.Duration     `json:"total"`
	Running   bool              `json:"running"`
	Intervals []domain.Interval `json:"intervals"`
}

// TimeService handles date expressions and duration formatting
type TimeService interface {
	// Date expressions
	ResolveDate(expr string, now time.Time) (time.Time, error)

	// Duration formatting
	FormatDuration(d time.Duration) string
	FormatShort(d time.Duration) string
}

// TrackingService appends start and stop marks to the log
type TrackingService interface {
	State(ctx context.Context) (*Session, error)
	Start(ctx context.Context, now time.Time) (*Transition, error)
	Stop(ctx context.Context, now time.Time) (*Transition, error)
}

// ReportingService computes tracked totals from the log
type ReportingService interface {
	Total(ctx context.Context, filter domain.DateFilter, now time.Time) (*Summary, error)
	Day(ctx context.Context, date time.Time, now time.Time) (*Summary, error)
	Week(ctx context.Context, now time.Time) (*Summary, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService      TimeService
	TrackingService  TrackingService
	ReportingService ReportingService
}

// NewServiceContainer wires every service against store.
func NewServiceContainer(store repository.LogStore) *ServiceContainer {
	return &ServiceContainer{
		TimeService:      NewTimeService(),
		TrackingService:  NewTrackingService(store),
		ReportingService: NewReportingService(store),
	}
}
