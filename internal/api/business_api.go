package api

import (
	"context"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/logging"
	"timetracker/internal/repository"
	"timetracker/internal/services"
)

// BusinessAPI defines the operations behind the tt commands.
// Every operation reads the clock exactly once and uses that instant for
// reconstruction, aggregation and any appended mark.
type BusinessAPI interface {
	// ========== Tracking Workflows ==========

	// StartTracking appends a start mark unless a session is already open
	StartTracking(ctx context.Context) (*TrackingResult, error)

	// StopTracking appends a stop mark if a session is open and reports today's total
	StopTracking(ctx context.Context) (*TrackingResult, error)

	// GetCurrentSession reports the open session, if any
	GetCurrentSession(ctx context.Context) (*SessionStatus, error)

	// ========== Reports ==========

	// GetDayReport totals the day named by dateExpr (see services.TimeService.ResolveDate)
	GetDayReport(ctx context.Context, dateExpr string) (*Report, error)

	// GetWeekReport totals the current ISO week
	GetWeekReport(ctx context.Context) (*Report, error)
}

type businessAPIImpl struct {
	services *services.ServiceContainer
	clock    func() time.Time
}

// NewBusinessAPI creates a new BusinessAPI instance backed by store
func NewBusinessAPI(store repository.LogStore) BusinessAPI {
	return NewBusinessAPIWithClock(store, time.Now)
}

// NewBusinessAPIWithClock creates a BusinessAPI that reads the current time from clock
func NewBusinessAPIWithClock(store repository.LogStore, clock func() time.Time) BusinessAPI {
	return &businessAPIImpl{
		services: services.NewServiceContainer(store),
		clock:    clock,
	}
}

// ========== Tracking Workflows ==========

func (b *businessAPIImpl) StartTracking(ctx context.Context) (*TrackingResult, error) {
	now := b.clock()

	transition, err := b.services.TrackingService.Start(ctx, now)
	if err != nil {
		return nil, err
	}

	logging.Debugln("start requested", logging.F("applied", transition.Applied), logging.F("at", transition.Mark.String()))
	return &TrackingResult{
		Mark:     transition.Mark,
		Applied:  transition.Applied,
		Previous: transition.Previous,
	}, nil
}

func (b *businessAPIImpl) StopTracking(ctx context.Context) (*TrackingResult, error) {
	now := b.clock()

	transition, err := b.services.TrackingService.Stop(ctx, now)
	if err != nil {
		return nil, err
	}
	logging.Debugln("stop requested", logging.F("applied", transition.Applied), logging.F("at", transition.Mark.String()))

	summary, err := b.services.ReportingService.Day(ctx, now, now)
	if err != nil {
		return nil, err
	}

	return &TrackingResult{
		Mark:     transition.Mark,
		Applied:  transition.Applied,
		Previous: transition.Previous,
		Today:    newReport(summary, b.services.TimeService),
	}, nil
}

func (b *businessAPIImpl) GetCurrentSession(ctx context.Context) (*SessionStatus, error) {
	now := b.clock()

	session, err := b.services.TrackingService.State(ctx)
	if err != nil {
		return nil, err
	}

	status := &SessionStatus{State: session.State}
	if session.State != domain.Tracking {
		return status, nil
	}

	since := session.Last.At
	open := domain.NewOpenInterval(since)
	status.Since = &since
	status.Elapsed = open.Elapsed(now)
	status.Duration = b.services.TimeService.FormatShort(status.Elapsed)
	return status, nil
}

// ========== Reports ==========

func (b *businessAPIImpl) GetDayReport(ctx context.Context, dateExpr string) (*Report, error) {
	now := b.clock()

	date, err := b.services.TimeService.ResolveDate(dateExpr, now)
	if err != nil {
		return nil, err
	}

	summary, err := b.services.ReportingService.Day(ctx, date, now)
	if err != nil {
		return nil, err
	}
	return newReport(summary, b.services.TimeService), nil
}

func (b *businessAPIImpl) GetWeekReport(ctx context.Context) (*Report, error) {
	now := b.clock()

	summary, err := b.services.ReportingService.Week(ctx, now)
	if err != nil {
		return nil, err
	}
	return newReport(summary, b.services.TimeService), nil
}
