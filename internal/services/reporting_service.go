package services

import (
	"context"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/logging"
	"timetracker/internal/repository"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	store repository.LogStore
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(store repository.LogStore) ReportingService {
	return &reportingServiceImpl{store: store}
}

// Total reads the log once and sums the intervals selected by filter.
func (r *reportingServiceImpl) Total(ctx context.Context, filter domain.DateFilter, now time.Time) (*Summary, error) {
	lines, err := r.store.ReadLines(ctx)
	if err != nil {
		return nil, err
	}

	intervals, err := ReconstructIntervals(lines)
	if err != nil {
		return nil, err
	}

	counted := Counted(intervals, filter)
	summary := &Summary{
		Label:     filter.String(),
		Total:     Aggregate(intervals, filter, now),
		Intervals: counted,
	}
	if n := len(counted); n > 0 && counted[n-1].IsOpen() {
		summary.Running = true
	}

	logging.Debugln("computed total",
		logging.F("filter", summary.Label),
		logging.F("intervals", len(intervals)),
		logging.F("counted", len(counted)),
		logging.F("total", summary.Total.String()))

	return summary, nil
}

// Day totals the calendar date of date
func (r *reportingServiceImpl) Day(ctx context.Context, date time.Time, now time.Time) (*Summary, error) {
	return r.Total(ctx, domain.SameDay(date), now)
}

// Week totals the ISO week containing now
func (r *reportingServiceImpl) Week(ctx context.Context, now time.Time) (*Summary, error) {
	return r.Total(ctx, domain.SameWeek(domain.WeekOf(now)), now)
}
